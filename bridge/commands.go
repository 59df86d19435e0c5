package bridge

import (
	"strconv"

	"github.com/remuco-cli/remuco/ipc"
	"github.com/remuco-cli/remuco/log"
	"github.com/remuco-cli/remuco/remote"
	"github.com/remuco-cli/remuco/status"
)

const ratingProperty = "rating"

// SimpleControl translates a remote command into player requests.
// It never waits for a reply.
func (s *Session) SimpleControl(cmd remote.Command, param int) {
	log.Debugf("bridge: control %s %d", cmd, param)

	switch cmd {
	case remote.CommandJump:
		s.player.SetNext(param - 1).Discard()
		s.finishPlobChange()

	case remote.CommandNext:
		s.player.SetNextRel(1).Discard()
		s.finishPlobChange()

	case remote.CommandPrev:
		s.player.SetNextRel(-1).Discard()
		s.finishPlobChange()

	case remote.CommandPlayPause:
		if s.cache.State() == status.Playing {
			s.player.Pause().Discard()
		} else {
			s.player.Start().Discard()
		}

	case remote.CommandStop:
		s.player.Stop().Discard()

	case remote.CommandRestart:
		s.player.Stop().Discard()
		s.player.SetNext(1).Discard()
		s.player.Start().Discard()

	case remote.CommandVolume:
		s.player.VolumeSet("left", param).Discard()
		s.player.VolumeSet("right", param).Discard()

	case remote.CommandRate:
		s.rate(param)

	default:
		log.Warnf("bridge: ignoring command %s", cmd)
	}
}

// finishPlobChange makes a changed playlist position take effect and starts
// playback if the player is not already playing.
func (s *Session) finishPlobChange() {
	s.player.Tickle().Discard()

	s.player.PlaybackStatus().Notify(func(r *ipc.Result) {
		defer r.Release()
		if !usable(r) {
			return
		}

		st, err := r.PlaybackStatus()
		if err != nil {
			log.Errorf("bridge: %v", err)
			return
		}

		if st != ipc.StatusPlaying {
			s.player.Start().Discard()
		}
	})
}

// rate sets the rating of the active track. Without an active track it does nothing.
func (s *Session) rate(value int) {
	trackID := s.cache.TrackID()
	if trackID == "" {
		log.Debug("bridge: no active track to rate")
		return
	}

	id, err := strconv.ParseUint(trackID, 10, 32)
	if err != nil || id == 0 {
		log.Errorf("bridge: active track id %q is not a medialib id", trackID)
		return
	}

	s.player.PropertySetInt(uint(id), ratingProperty, value).Discard()
	s.forgetPlob(trackID)
}
