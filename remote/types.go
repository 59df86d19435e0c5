package remote

// Meta names of a Plob as understood by remote clients.
const (
	MetaArtist  = "artist"
	MetaAlbum   = "album"
	MetaTitle   = "title"
	MetaGenre   = "genre"
	MetaComment = "comment"
	MetaTrack   = "track"
	MetaLength  = "length"
	MetaBitrate = "bitrate"
	MetaRating  = "rating"
	MetaArt     = "art"
)

// Plob is a playable object (a track) with its metadata.
type Plob struct {
	ID   string            `json:"id"`
	Meta map[string]string `json:"meta"`
}

func NewPlob(id string) *Plob {
	return &Plob{ID: id, Meta: make(map[string]string)}
}

func (p *Plob) Set(name, value string) {
	p.Meta[name] = value
}

// Flag describes a ploblist.
type Flag int

const (
	// FlagStatic marks a ploblist remote clients cannot edit.
	FlagStatic Flag = 1 << iota
)

// PloblistInfo identifies a ploblist (a playlist) in the library.
type PloblistInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Flags Flag   `json:"flags"`
}

// Library is the set of ploblists the player offers.
type Library struct {
	Ploblists []PloblistInfo `json:"ploblists"`
}

func (l *Library) Append(id, name string, flags Flag) {
	l.Ploblists = append(l.Ploblists, PloblistInfo{ID: id, Name: name, Flags: flags})
}

func (l Library) Len() int {
	return len(l.Ploblists)
}

// Descriptor announces what the player supports.
type Descriptor struct {
	PlayerName            string `json:"player_name"`
	MaxRating             int    `json:"max_rating"`
	NotifiesChanges       bool   `json:"notifies_changes"`
	SupportedRepeatModes  int    `json:"supported_repeat_modes"`
	SupportedShuffleModes int    `json:"supported_shuffle_modes"`
	SupportsPlaylist      bool   `json:"supports_playlist"`
	SupportsPlaylistJump  bool   `json:"supports_playlist_jump"`
	SupportsQueue         bool   `json:"supports_queue"`
	SupportsQueueJump     bool   `json:"supports_queue_jump"`
	SupportsSeek          bool   `json:"supports_seek"`
	SupportsTags          bool   `json:"supports_tags"`
}
