package ipc

import "github.com/samber/mo"

// PlaybackStatus is the player's own playback enumeration.
type PlaybackStatus uint

const (
	StatusStopped PlaybackStatus = 0
	StatusPlaying PlaybackStatus = 1
	StatusPaused  PlaybackStatus = 2
)

// Volume holds per-channel volumes as reported by the player.
// Channels are unsigned; anything else is absent.
type Volume struct {
	Left  mo.Option[uint]
	Right mo.Option[uint]
}

// MediaInfo is the subset of a medialib entry the bridge forwards.
// Duration is in milliseconds.
type MediaInfo struct {
	Artist   mo.Option[string]
	Album    mo.Option[string]
	Title    mo.Option[string]
	Genre    mo.Option[string]
	Comment  mo.Option[string]
	TrackNr  mo.Option[int]
	Duration mo.Option[int]
	Bitrate  mo.Option[int]
	Rating   mo.Option[int]
	Art      mo.Option[string]
}
