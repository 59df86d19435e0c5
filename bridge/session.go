// Package bridge connects the player IPC to the remote-control server.
//
// A Session owns the player connection, the status cache and the server
// handle. Everything it does runs on the goroutine that called Run: player
// frames, remote calls and server events are serviced from one select loop,
// and a pull operation that needs a player reply waits in a nested loop that
// services only the player connection.
package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/remuco-cli/remuco/ipc"
	"github.com/remuco-cli/remuco/log"
	"github.com/remuco-cli/remuco/plobcache"
	"github.com/remuco-cli/remuco/remote"
	"github.com/remuco-cli/remuco/status"
)

// Options tune a Session.
type Options struct {
	// WaitTimeout bounds a nested wait for a player reply. Zero waits until
	// the reply arrives or the player disconnects.
	WaitTimeout time.Duration

	// StartupDelay is slept after the initial status requests.
	StartupDelay time.Duration

	// Plobs caches track metadata. Nil disables caching.
	Plobs *plobcache.Cache
}

type Session struct {
	player *ipc.Client
	server remote.Server
	cache  *status.Cache
	opts   Options

	// stale holds plob ids whose cached metadata is dropped at the next lookup.
	stale map[string]struct{}

	shuttingDown bool
	disconnected bool
	quit         bool
}

var _ remote.Callbacks = (*Session)(nil)

func New(player *ipc.Client, server remote.Server, opts Options) *Session {
	return &Session{
		player: player,
		server: server,
		cache:  status.NewCache(),
		opts:   opts,
		stale:  make(map[string]struct{}),
	}
}

// Descriptor announces the capabilities of the player behind a Session.
func Descriptor(playerName string, maxRating int) remote.Descriptor {
	return remote.Descriptor{
		PlayerName:           playerName,
		MaxRating:            maxRating,
		NotifiesChanges:      true,
		SupportsPlaylist:     true,
		SupportsPlaylistJump: true,
	}
}

// Run serves the player and the remote-control server until the server
// reports it is down. Cancelling ctx, like a player disconnect, starts the
// server shutdown. Run returns an error wrapping ipc.ErrDisconnected when the
// session ended because the player went away.
func (s *Session) Run(ctx context.Context) error {
	s.start()

	if s.opts.StartupDelay > 0 {
		select {
		case <-time.After(s.opts.StartupDelay):
		case <-ctx.Done():
		}
	}

	log.Debug("bridge: running main loop")

	var (
		frames = s.player.Frames()
		calls  = s.server.Calls()
		events = s.server.Events()
		done   = ctx.Done()
	)

	for !s.quit {
		select {
		case f, ok := <-frames:
			s.player.Dispatch(f, ok)
			if !ok {
				frames = nil
			}
		case call := <-calls:
			call(s)
		case ev, ok := <-events:
			if !ok {
				log.Warn("bridge: server event channel closed")
				s.quit = true
				continue
			}
			s.Notify(ev)
		case <-done:
			log.Info("bridge: interrupted")
			done = nil
			s.shutdown()
		}
	}

	log.Debug("bridge: left main loop")

	if s.disconnected {
		return fmt.Errorf("session ended: %w", ipc.ErrDisconnected)
	}
	return nil
}

// start wires the broadcasts and asks for the current player state.
func (s *Session) start() {
	s.player.OnDisconnect(s.onDisconnect)
	s.subscribe()
	s.requestInitialStatus()
}

func (s *Session) onDisconnect() {
	log.Warn("bridge: player disconnected")
	s.disconnected = true
	s.shutdown()
}

// shutdown asks the server to go down, once.
func (s *Session) shutdown() {
	if s.shuttingDown {
		return
	}
	s.shuttingDown = true
	s.server.Shutdown()
}
