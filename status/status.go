// Package status holds the bridge's coalesced view of the player.
//
// A Cache collects broadcast updates between two pulls. Updates to the same
// field collapse to the latest value; Drain hands the dirty groups to a
// caller-owned Snapshot and clears them.
package status

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
)

// PlaybackState is the remote-side playback state.
type PlaybackState int

const (
	Stopped PlaybackState = iota
	Playing
	Paused
)

var stateNames = map[PlaybackState]string{
	Stopped: "stopped",
	Playing: "playing",
	Paused:  "paused",
}

func (s PlaybackState) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("state(%d)", int(s))
}

func (s PlaybackState) MarshalText() ([]byte, error) {
	if _, ok := stateNames[s]; !ok {
		return nil, fmt.Errorf("unknown playback state %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *PlaybackState) UnmarshalText(text []byte) error {
	for state, name := range stateNames {
		if strings.EqualFold(name, string(text)) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown playback state %q", text)
}

// Mode is a player-defined repeat or shuffle mode. Zero is off.
type Mode int

const ModeOff Mode = 0

// Snapshot is the pull side's copy of the player status.
type Snapshot struct {
	State    PlaybackState  `json:"state"`
	Volume   int            `json:"volume"`
	Repeat   Mode           `json:"repeat"`
	Shuffle  Mode           `json:"shuffle"`
	Position mo.Option[int] `json:"position"`
	TrackID  string         `json:"track_id"`
	Playlist []string       `json:"playlist"`
}

// Fields is a partial status update. Absent options leave the cached value alone.
type Fields struct {
	State    mo.Option[PlaybackState]
	Volume   mo.Option[int]
	Repeat   mo.Option[Mode]
	Shuffle  mo.Option[Mode]
	Position mo.Option[int]
}
