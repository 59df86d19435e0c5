package ipc

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseAddress(t *testing.T) {
	Convey("parseAddress", t, func() {
		Convey("unix scheme", func() {
			network, addr, err := parseAddress("unix:///tmp/xmms-ipc-alice")
			So(err, ShouldBeNil)
			So(network, ShouldEqual, "unix")
			So(addr, ShouldEqual, "/tmp/xmms-ipc-alice")
		})

		Convey("bare path", func() {
			network, addr, err := parseAddress("/run/player.sock")
			So(err, ShouldBeNil)
			So(network, ShouldEqual, "unix")
			So(addr, ShouldEqual, "/run/player.sock")
		})

		Convey("tcp with and without port", func() {
			_, addr, err := parseAddress("tcp://10.0.0.5:1234")
			So(err, ShouldBeNil)
			So(addr, ShouldEqual, "10.0.0.5:1234")

			network, addr, err := parseAddress("tcp://media.local")
			So(err, ShouldBeNil)
			So(network, ShouldEqual, "tcp")
			So(addr, ShouldEqual, "media.local:"+DefaultPort)
		})

		Convey("unsupported schemes and empty input fail", func() {
			_, _, err := parseAddress("http://example.com")
			So(err, ShouldNotBeNil)

			_, _, err = parseAddress("")
			So(err, ShouldNotBeNil)
		})
	})
}
