package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Playing
	Paused
	Stopped
	Track
	Playlist
	Volume
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(^_^)",
		squares: "▣",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(T_T)",
		squares: "▨",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "~",
		kaomoji: "(・_・;)",
		squares: "▤",
	},
	Playing: {
		emoji:   "▶️",
		nerd:    "",
		plain:   ">",
		kaomoji: "♪(^∇^*)",
		squares: "▶",
	},
	Paused: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "||",
		kaomoji: "(-_-)zzz",
		squares: "▥",
	},
	Stopped: {
		emoji:   "⏹️",
		nerd:    "",
		plain:   "[]",
		kaomoji: "(._.)",
		squares: "■",
	},
	Track: {
		emoji:   "🎵",
		nerd:    "",
		plain:   "#",
		kaomoji: "♪",
		squares: "▦",
	},
	Playlist: {
		emoji:   "📃",
		nerd:    "",
		plain:   "=",
		kaomoji: "φ(..)",
		squares: "▤",
	},
	Volume: {
		emoji:   "🔊",
		nerd:    "",
		plain:   "vol",
		kaomoji: "ヽ(°〇°)ﾉ",
		squares: "▧",
	},
}
