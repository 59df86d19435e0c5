package bridge

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/remuco-cli/remuco/ipc"
	"github.com/remuco-cli/remuco/ipc/ipctest"
	"github.com/remuco-cli/remuco/remote"
	"github.com/samber/lo"
)

type fakeServer struct {
	notifies  atomic.Int32
	shutdowns atomic.Int32
	calls     chan remote.Call
	events    chan remote.Event
}

func newFakeServer() *fakeServer {
	return &fakeServer{
		calls:  make(chan remote.Call),
		events: make(chan remote.Event, 4),
	}
}

func (f *fakeServer) Notify() {
	f.notifies.Add(1)
}

func (f *fakeServer) Shutdown() {
	f.shutdowns.Add(1)
	f.events <- remote.EventDown
}

func (f *fakeServer) Calls() <-chan remote.Call {
	return f.calls
}

func (f *fakeServer) Events() <-chan remote.Event {
	return f.events
}

type fixture struct {
	player  *ipctest.Player
	client  *ipc.Client
	server  *fakeServer
	session *Session
}

func newFixture(t *testing.T, opts Options) *fixture {
	player, conn := ipctest.New()
	client := ipc.NewClient(conn)
	server := newFakeServer()

	t.Cleanup(func() {
		_ = client.Close()
		_ = player.Close()
	})

	return &fixture{
		player:  player,
		client:  client,
		server:  server,
		session: New(client, server, opts),
	}
}

// pump dispatches player frames until cond holds or two seconds pass.
func (f *fixture) pump(cond func() bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	for !cond() {
		if err := f.client.Iterate(ctx); err != nil {
			return
		}
	}
}

// settle pumps until every request has been answered.
func (f *fixture) settle() {
	f.pump(func() bool { return f.client.Pending() == 0 })
}

// notified pumps until the server has seen n change edges.
func (f *fixture) notified(n int32) {
	f.pump(func() bool { return f.server.notifies.Load() >= n })
}

// broadcast pushes a player notification and waits until the bridge raised its edge.
func (f *fixture) broadcast(kind ipc.Broadcast, data any) {
	want := f.server.notifies.Load() + 1
	if err := f.player.Broadcast(string(kind), data); err != nil {
		panic(err)
	}
	f.notified(want)
}

// waitForRequest returns the first command request whose leading argument is arg.
func (f *fixture) waitForRequest(command string, arg any) (ipctest.Request, bool) {
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		req, ok := lo.Find(f.player.Requests(), func(r ipctest.Request) bool {
			return r.Command == command && len(r.Args) > 0 && r.Args[0] == arg
		})
		if ok {
			return req, true
		}
		time.Sleep(2 * time.Millisecond)
	}
	return ipctest.Request{}, false
}
