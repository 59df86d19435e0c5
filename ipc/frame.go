// Package ipc is a client for the player's newline-delimited JSON IPC.
//
// Every request yields a *Result that completes when the matching reply is
// dispatched. Replies and broadcasts are read by a background goroutine but
// only dispatched by the goroutine that owns the Client, through Dispatch or
// Iterate, so notifiers never run concurrently with the owner.
package ipc

import "encoding/json"

// Frame is one line received from the player.
type Frame struct {
	RequestID uint64          `json:"request_id,omitempty"`
	Event     Broadcast       `json:"event,omitempty"`
	Error     string          `json:"error,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// IsBroadcast reports whether the frame is an unsolicited player notification.
func (f *Frame) IsBroadcast() bool {
	return f.Event != ""
}

// failed reports whether the frame carries a player-side error.
func (f *Frame) failed() bool {
	return f.Error != "" && f.Error != "success"
}

// request is the JSON structure written to the player.
type request struct {
	Command   []any  `json:"command"`
	RequestID uint64 `json:"request_id"`
}

// Broadcast is a kind of unsolicited player notification.
type Broadcast string

const (
	BroadcastPlaybackStatus  Broadcast = "playback_status"
	BroadcastVolumeChanged   Broadcast = "playback_volume_changed"
	BroadcastCurrentID       Broadcast = "playback_current_id"
	BroadcastCurrentPos      Broadcast = "playlist_current_pos"
	BroadcastPlaylistChanged Broadcast = "playlist_changed"
	BroadcastPlaylistLoaded  Broadcast = "playlist_loaded"
)
