package bridge

import (
	"context"

	"github.com/remuco-cli/remuco/ipc"
	"github.com/remuco-cli/remuco/log"
)

// roundTrip blocks until r is ready and returns extract(r), servicing only
// the player connection meanwhile. Broadcasts that arrive during the wait are
// dispatched; remote calls and server events stay queued.
//
// If the player disconnects, the wait times out, or the player reports an
// error, r is released and sentinel is returned instead.
func roundTrip[T any](s *Session, r *ipc.Result, sentinel T, extract func(*ipc.Result) T) T {
	ready := false
	r.Notify(func(*ipc.Result) { ready = true })

	ctx := context.Background()
	if s.opts.WaitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.WaitTimeout)
		defer cancel()
	}

	for !ready && !s.player.Disconnected() {
		if err := s.player.Iterate(ctx); err != nil {
			log.Warnf("bridge: gave up waiting for %s: %v", r.Op(), err)
			s.player.Forget(r)
			r.Release()
			return sentinel
		}
	}

	defer r.Release()

	if s.player.Disconnected() {
		log.Warnf("bridge: player disconnected while waiting for %s", r.Op())
		return sentinel
	}

	if r.IsError() {
		log.Warnf("bridge: %v", r.Err())
		return sentinel
	}

	return extract(r)
}
