package bridge

import (
	"strconv"

	"github.com/remuco-cli/remuco/ipc"
	"github.com/remuco-cli/remuco/log"
	"github.com/remuco-cli/remuco/status"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

const (
	// defaultChannelVolume stands in for a channel the player did not report.
	defaultChannelVolume = 50
	maxVolume            = 100
)

func (s *Session) subscribe() {
	s.player.Subscribe(ipc.BroadcastPlaybackStatus, s.onPlaybackStatus)
	s.player.Subscribe(ipc.BroadcastVolumeChanged, s.onVolumeChanged)
	s.player.Subscribe(ipc.BroadcastCurrentID, s.onCurrentID)
	s.player.Subscribe(ipc.BroadcastCurrentPos, s.onCurrentPos)
	s.player.Subscribe(ipc.BroadcastPlaylistChanged, s.onPlaylist)
	s.player.Subscribe(ipc.BroadcastPlaylistLoaded, s.onPlaylist)
}

// requestInitialStatus fills the cache through the broadcast handlers.
func (s *Session) requestInitialStatus() {
	s.player.PlaybackStatus().Notify(s.onPlaybackStatus)
	s.player.VolumeGet().Notify(s.onVolumeChanged)
	s.player.CurrentID().Notify(s.onCurrentID)
	s.player.CurrentPos().Notify(s.onCurrentPos)
	s.player.ListEntries(ipc.ActivePlaylist).Notify(s.onPlaylist)
}

// usable logs and rejects error results.
func usable(r *ipc.Result) bool {
	if r.IsError() {
		log.Warnf("bridge: %v", r.Err())
		return false
	}
	return true
}

func (s *Session) onPlaybackStatus(r *ipc.Result) {
	defer r.Release()
	if !usable(r) {
		return
	}

	st, err := r.PlaybackStatus()
	if err != nil {
		log.Errorf("bridge: %v", err)
		return
	}

	var fields status.Fields
	switch st {
	case ipc.StatusStopped:
		fields.State = mo.Some(status.Stopped)
	case ipc.StatusPlaying:
		fields.State = mo.Some(status.Playing)
	case ipc.StatusPaused:
		fields.State = mo.Some(status.Paused)
	default:
		log.Errorf("bridge: unknown player playback status %d", st)
	}

	log.Debugf("bridge: playback status is %d", st)
	s.cache.ApplyStatus(fields)
	s.server.Notify()
}

func (s *Session) onVolumeChanged(r *ipc.Result) {
	defer r.Release()
	if !usable(r) {
		return
	}

	vol, err := r.Volume()
	if err != nil {
		log.Errorf("bridge: %v", err)
		return
	}

	left := int(vol.Left.OrElse(defaultChannelVolume))
	right := int(vol.Right.OrElse(defaultChannelVolume))
	if !vol.Left.IsPresent() || !vol.Right.IsPresent() {
		log.Warnf("bridge: incomplete volume reply, using %d:%d", left, right)
	}

	log.Debugf("bridge: volume is %d:%d", left, right)
	s.cache.ApplyStatus(status.Fields{Volume: mo.Some(lo.Clamp(lo.Max([]int{left, right}), 0, maxVolume))})
	s.server.Notify()
}

func (s *Session) onCurrentID(r *ipc.Result) {
	defer r.Release()
	if !usable(r) {
		return
	}

	id, err := r.Uint()
	if err != nil {
		log.Errorf("bridge: %v", err)
		return
	}

	trackID := ""
	if id != 0 {
		trackID = strconv.FormatUint(uint64(id), 10)
		s.stale[trackID] = struct{}{}
	}

	log.Debugf("bridge: current track is %q", trackID)
	s.cache.ApplyTrackID(trackID)
	s.server.Notify()
}

func (s *Session) onCurrentPos(r *ipc.Result) {
	defer r.Release()
	if !usable(r) {
		return
	}

	pos, err := r.Uint()
	if err != nil {
		log.Errorf("bridge: %v", err)
		return
	}

	log.Debugf("bridge: current position is %d", pos+1)
	s.cache.ApplyStatus(status.Fields{Position: mo.Some(int(pos) + 1)})
	s.server.Notify()
}

func (s *Session) onPlaylist(r *ipc.Result) {
	defer r.Release()
	if !usable(r) {
		return
	}

	ids, err := r.UintList()
	if err != nil {
		log.Errorf("bridge: %v", err)
		return
	}

	log.Debugf("bridge: playlist changed or loaded, %d entries", len(ids))
	s.cache.ApplyPlaylist(plobIDs(ids))
	s.server.Notify()
}

func plobIDs(ids []uint) []string {
	return lo.Map(ids, func(id uint, _ int) string {
		return strconv.FormatUint(uint64(id), 10)
	})
}
