package bridge

import (
	"strconv"

	"github.com/remuco-cli/remuco/ipc"
	"github.com/remuco-cli/remuco/log"
	"github.com/remuco-cli/remuco/remote"
	"github.com/remuco-cli/remuco/status"
)

// Synchronize drains the status cache into dst.
func (s *Session) Synchronize(dst *status.Snapshot) {
	if s.cache.Drain(dst) {
		log.Debug("bridge: synchronized status")
	}
}

// GetLibrary lists the stored playlists. Failures yield an empty library.
func (s *Session) GetLibrary() remote.Library {
	return roundTrip(s, s.player.PlaylistList(), remote.Library{}, func(r *ipc.Result) remote.Library {
		var lib remote.Library

		names, err := r.StringList()
		if err != nil {
			log.Errorf("bridge: %v", err)
			return lib
		}

		for _, name := range names {
			lib.Append(name, name, remote.FlagStatic)
		}
		return lib
	})
}

// GetPlob fetches the metadata of a track. Unknown or invalid ids and failures yield nil.
func (s *Session) GetPlob(id string) *remote.Plob {
	n, err := strconv.ParseUint(id, 10, 32)
	if err != nil || n == 0 {
		log.Warnf("bridge: invalid plob id %q", id)
		return nil
	}

	if _, ok := s.stale[id]; ok {
		delete(s.stale, id)
		s.forgetPlob(id)
	}

	if s.opts.Plobs != nil {
		if plob, ok := s.opts.Plobs.Get(id).Get(); ok {
			return plob
		}
	}

	log.Debugf("bridge: reading plob %s from the medialib", id)

	plob := roundTrip(s, s.player.MedialibGetInfo(uint(n)), (*remote.Plob)(nil), func(r *ipc.Result) *remote.Plob {
		info, err := r.MediaInfo()
		if err != nil {
			log.Errorf("bridge: %v", err)
			return nil
		}
		return plobFromInfo(id, info)
	})

	if plob != nil && s.opts.Plobs != nil {
		if err := s.opts.Plobs.Set(plob); err != nil {
			log.Warnf("bridge: cache plob %s: %v", id, err)
		}
	}

	return plob
}

// GetPloblist lists the track ids of a playlist. Failures yield an empty list.
func (s *Session) GetPloblist(id string) []string {
	return roundTrip(s, s.player.ListEntries(id), []string{}, func(r *ipc.Result) []string {
		ids, err := r.UintList()
		if err != nil {
			log.Errorf("bridge: %v", err)
			return []string{}
		}
		return plobIDs(ids)
	})
}

// PlayPloblist loads a playlist.
func (s *Session) PlayPloblist(id string) {
	s.player.PlaylistLoad(id).Discard()
}

// Notify handles server lifecycle events.
func (s *Session) Notify(ev remote.Event) {
	switch ev {
	case remote.EventError:
		log.Error("bridge: server failed, shutting it down")
		s.shutdown()
	case remote.EventDown:
		log.Debug("bridge: server is down")
		s.quit = true
	default:
		log.Warnf("bridge: ignoring server event %s", ev)
	}
}

func (s *Session) forgetPlob(id string) {
	if s.opts.Plobs == nil {
		return
	}
	if err := s.opts.Plobs.Delete(id); err != nil {
		log.Warnf("bridge: forget cached plob %s: %v", id, err)
	}
}
