package bridge

import (
	"testing"

	"github.com/remuco-cli/remuco/ipc/ipctest"
	"github.com/remuco-cli/remuco/remote"
	"github.com/remuco-cli/remuco/status"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSimpleControl(t *testing.T) {
	Convey("Given a session", t, func() {
		f := newFixture(t, Options{})

		control := func(cmd remote.Command, param int) []string {
			f.session.SimpleControl(cmd, param)
			f.settle()
			return f.player.Commands()
		}

		Convey("Jump while paused", func() {
			f.player.Reply("playback_status", ipctest.Reply{Data: 2})

			Convey("Sets the next entry, tickles, checks the status and starts", func() {
				So(control(remote.CommandJump, 5), ShouldResemble, []string{
					"playlist_set_next", "playback_tickle", "playback_status", "playback_start",
				})

				req, _ := f.player.Find("playlist_set_next")
				So(req.Args, ShouldResemble, []any{float64(4)})
			})
		})

		Convey("Jump while playing does not start again", func() {
			f.player.Reply("playback_status", ipctest.Reply{Data: 1})

			So(control(remote.CommandJump, 1), ShouldResemble, []string{
				"playlist_set_next", "playback_tickle", "playback_status",
			})
		})

		Convey("A failing status query does not start", func() {
			f.player.Reply("playback_status", ipctest.Reply{Error: "busy"})

			So(control(remote.CommandJump, 1), ShouldNotContain, "playback_start")
		})

		Convey("Next and prev move relatively", func() {
			f.player.Reply("playback_status", ipctest.Reply{Data: 1})

			control(remote.CommandNext, 0)
			req, _ := f.player.Find("playlist_set_next_rel")
			So(req.Args, ShouldResemble, []any{float64(1)})

			control(remote.CommandPrev, 0)
			req, _ = f.player.Find("playlist_set_next_rel")
			So(req.Args, ShouldResemble, []any{float64(-1)})
		})

		Convey("Play-pause follows the cached state", func() {
			So(control(remote.CommandPlayPause, 0), ShouldResemble, []string{"playback_start"})

			f.session.cache.ApplyStatus(status.Fields{State: mo.Some(status.Playing)})
			So(control(remote.CommandPlayPause, 0), ShouldResemble, []string{"playback_start", "playback_pause"})
		})

		Convey("Stop", func() {
			So(control(remote.CommandStop, 0), ShouldResemble, []string{"playback_stop"})
		})

		Convey("Restart stops, rewinds and starts", func() {
			So(control(remote.CommandRestart, 0), ShouldResemble, []string{
				"playback_stop", "playlist_set_next", "playback_start",
			})

			req, _ := f.player.Find("playlist_set_next")
			So(req.Args, ShouldResemble, []any{float64(1)})
		})

		Convey("Volume sets both channels", func() {
			So(control(remote.CommandVolume, 70), ShouldResemble, []string{
				"playback_volume_set", "playback_volume_set",
			})

			reqs := f.player.Requests()
			So(reqs[0].Args, ShouldResemble, []any{"left", float64(70)})
			So(reqs[1].Args, ShouldResemble, []any{"right", float64(70)})
		})

		Convey("Rate without an active track does nothing", func() {
			So(control(remote.CommandRate, 3), ShouldBeEmpty)
		})

		Convey("Rate sets the rating of the active track", func() {
			f.session.cache.ApplyTrackID("42")

			So(control(remote.CommandRate, 3), ShouldResemble, []string{"medialib_entry_property_set_int"})

			req, _ := f.player.Find("medialib_entry_property_set_int")
			So(req.Args, ShouldResemble, []any{float64(42), "rating", float64(3)})
		})

		Convey("Failed commands are logged and dropped", func() {
			f.player.Reply("playback_stop", ipctest.Reply{Error: "not playing"})

			So(control(remote.CommandStop, 0), ShouldResemble, []string{"playback_stop"})
			So(f.client.Pending(), ShouldEqual, 0)
		})
	})
}

func TestPlayPloblist(t *testing.T) {
	Convey("Given a session", t, func() {
		f := newFixture(t, Options{})

		Convey("Playing a ploblist loads it", func() {
			f.session.PlayPloblist("Party")
			f.settle()

			req, ok := f.player.Find("playlist_load")
			So(ok, ShouldBeTrue)
			So(req.Args, ShouldResemble, []any{"Party"})
		})
	})
}
