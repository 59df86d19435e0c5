package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/remuco-cli/remuco/status"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type fakeProxy struct {
	mu       sync.Mutex
	cache    *status.Cache
	controls []string
	played   []string
	events   []Event
}

func newFakeProxy() *fakeProxy {
	return &fakeProxy{cache: status.NewCache()}
}

func (p *fakeProxy) Synchronize(dst *status.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cache.Drain(dst)
}

func (p *fakeProxy) GetLibrary() Library {
	var lib Library
	lib.Append("Default", "Default", FlagStatic)
	lib.Append("Jazz", "Jazz", FlagStatic)
	return lib
}

func (p *fakeProxy) GetPlob(id string) *Plob {
	if id != "7" {
		return nil
	}
	plob := NewPlob(id)
	plob.Set(MetaTitle, "Halleluhwah")
	return plob
}

func (p *fakeProxy) GetPloblist(id string) []string {
	if id == "Jazz" {
		return []string{"3", "4"}
	}
	return nil
}

func (p *fakeProxy) PlayPloblist(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, id)
}

func (p *fakeProxy) SimpleControl(cmd Command, param int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.controls = append(p.controls, fmt.Sprintf("%s:%d", cmd, param))
}

func (p *fakeProxy) Notify(ev Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
}

func (p *fakeProxy) snapshot() (controls, played []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.controls...), append([]string(nil), p.played...)
}

// run services the server's calls like a session loop would.
func run(s *HTTPServer, cb Callbacks) (stop func()) {
	quit := make(chan struct{})
	go func() {
		for {
			select {
			case call := <-s.Calls():
				call(cb)
			case <-quit:
				return
			}
		}
	}()
	return func() { close(quit) }
}

func newTestServer() *HTTPServer {
	return NewHTTPServer(Options{
		Address:        "127.0.0.1:0",
		Descriptor:     Descriptor{PlayerName: "XMMS2", MaxRating: 5, NotifiesChanges: true},
		AllowedOrigins: []string{"*"},
	})
}

func TestHTTPRoundTrip(t *testing.T) {
	Convey("Given a served remote-control API", t, func() {
		proxy := newFakeProxy()
		srv := newTestServer()
		stop := run(srv, proxy)
		defer stop()

		ts := httptest.NewServer(srv.Handler())
		defer ts.Close()

		client := NewClient(ts.URL)
		ctx := context.Background()

		Convey("The descriptor is served", func() {
			d, err := client.Descriptor(ctx)
			So(err, ShouldBeNil)
			So(d.PlayerName, ShouldEqual, "XMMS2")
			So(d.MaxRating, ShouldEqual, 5)
		})

		Convey("Status drains the proxy cache into the retained snapshot", func() {
			proxy.mu.Lock()
			proxy.cache.ApplyStatus(status.Fields{State: mo.Some(status.Playing), Volume: mo.Some(80)})
			proxy.mu.Unlock()

			snap, err := client.Status(ctx)
			So(err, ShouldBeNil)
			So(snap.State, ShouldEqual, status.Playing)
			So(snap.Volume, ShouldEqual, 80)

			Convey("and keeps it for the next pull", func() {
				proxy.mu.Lock()
				proxy.cache.ApplyTrackID("12")
				proxy.mu.Unlock()

				snap, err := client.Status(ctx)
				So(err, ShouldBeNil)
				So(snap.Volume, ShouldEqual, 80)
				So(snap.TrackID, ShouldEqual, "12")
			})
		})

		Convey("Library, ploblist and plob are served", func() {
			lib, err := client.Library(ctx)
			So(err, ShouldBeNil)
			So(lib.Len(), ShouldEqual, 2)
			So(lib.Ploblists[1], ShouldResemble, PloblistInfo{ID: "Jazz", Name: "Jazz", Flags: FlagStatic})

			ids, err := client.Ploblist(ctx, "Jazz")
			So(err, ShouldBeNil)
			So(ids, ShouldResemble, []string{"3", "4"})

			ids, err = client.Ploblist(ctx, "Unknown")
			So(err, ShouldBeNil)
			So(ids, ShouldBeEmpty)

			plob, err := client.Plob(ctx, "7")
			So(err, ShouldBeNil)
			So(plob.Meta[MetaTitle], ShouldEqual, "Halleluhwah")
		})

		Convey("A missing plob is ErrNotFound", func() {
			_, err := client.Plob(ctx, "8")
			So(errors.Is(err, ErrNotFound), ShouldBeTrue)
		})

		Convey("Commands reach the proxy", func() {
			So(client.Control(ctx, CommandJump, 5), ShouldBeNil)
			So(client.PlayPloblist(ctx, "Jazz"), ShouldBeNil)

			controls, played := proxy.snapshot()
			So(controls, ShouldResemble, []string{"jump:5"})
			So(played, ShouldResemble, []string{"Jazz"})
		})

		Convey("Unknown commands are rejected", func() {
			resp, err := http.Post(ts.URL+"/control/eject", "text/plain", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestShutdown(t *testing.T) {
	Convey("Given a started server", t, func() {
		srv := newTestServer()
		So(srv.Start(), ShouldBeNil)

		Convey("Shutdown answers with EventDown once", func() {
			srv.Shutdown()
			srv.Shutdown()

			select {
			case ev := <-srv.Events():
				So(ev, ShouldEqual, EventDown)
			case <-time.After(shutdownTimeout + time.Second):
				So("no EventDown", ShouldBeEmpty)
			}

			time.Sleep(50 * time.Millisecond)
			So(len(srv.Events()), ShouldEqual, 0)
		})

		Convey("Requests after shutdown are refused", func() {
			srv.Shutdown()
			err := srv.exec(context.Background(), func(Callbacks) {})
			So(err, ShouldEqual, ErrShutdown)
		})
	})
}

func TestCommands(t *testing.T) {
	Convey("ParseCommand", t, func() {
		for _, name := range CommandNames() {
			cmd, err := ParseCommand(name)
			So(err, ShouldBeNil)
			So(cmd.String(), ShouldEqual, name)
		}

		_, err := ParseCommand("eject")
		So(err, ShouldNotBeNil)

		cmd, err := ParseCommand("Play-Pause")
		So(err, ShouldBeNil)
		So(cmd, ShouldEqual, CommandPlayPause)
	})
}
