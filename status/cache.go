package status

import (
	"github.com/samber/mo"
	"golang.org/x/exp/slices"
)

// Cache is owned by a single goroutine and is not safe for concurrent use.
type Cache struct {
	state    PlaybackState
	volume   int
	repeat   Mode
	shuffle  Mode
	position mo.Option[int]
	trackID  string

	statusDirty     bool
	trackIDChanged  bool
	pendingPlaylist mo.Option[[]string]
}

func NewCache() *Cache {
	return &Cache{}
}

// ApplyStatus overwrites the present fields and marks the status group dirty.
func (c *Cache) ApplyStatus(f Fields) {
	if v, ok := f.State.Get(); ok {
		c.state = v
	}
	if v, ok := f.Volume.Get(); ok {
		c.volume = v
	}
	if v, ok := f.Repeat.Get(); ok {
		c.repeat = v
	}
	if v, ok := f.Shuffle.Get(); ok {
		c.shuffle = v
	}
	if v, ok := f.Position.Get(); ok {
		c.position = mo.Some(v)
	}
	c.statusDirty = true
}

// ApplyTrackID records the active track. An empty id means no active track.
func (c *Cache) ApplyTrackID(id string) {
	c.trackID = id
	c.trackIDChanged = true
}

// ApplyPlaylist replaces any undrained playlist with ids.
func (c *Cache) ApplyPlaylist(ids []string) {
	c.pendingPlaylist = mo.Some(slices.Clone(ids))
}

// Drain copies every dirty group into dst and clears its flag.
// Clean groups are left untouched in dst. It reports whether anything was copied.
func (c *Cache) Drain(dst *Snapshot) bool {
	drained := false

	if c.statusDirty {
		c.statusDirty = false
		dst.State = c.state
		dst.Volume = c.volume
		dst.Repeat = c.repeat
		dst.Shuffle = c.shuffle
		dst.Position = c.position
		drained = true
	}

	if c.trackIDChanged {
		c.trackIDChanged = false
		dst.TrackID = c.trackID
		drained = true
	}

	if ids, ok := c.pendingPlaylist.Get(); ok {
		c.pendingPlaylist = mo.None[[]string]()
		if ids == nil {
			ids = []string{}
		}
		dst.Playlist = ids
		drained = true
	}

	return drained
}

// Dirty reports whether a Drain would copy anything.
func (c *Cache) Dirty() bool {
	return c.statusDirty || c.trackIDChanged || c.pendingPlaylist.IsPresent()
}

// State is the last known playback state, drained or not.
func (c *Cache) State() PlaybackState {
	return c.state
}

// TrackID is the last known active track id, drained or not.
func (c *Cache) TrackID() string {
	return c.trackID
}
