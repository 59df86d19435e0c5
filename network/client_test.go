package network

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTransport(t *testing.T) {
	Convey("Given a bridge transport", t, func() {
		tr := Transport()

		Convey("It keeps a small idle pool", func() {
			So(tr.MaxIdleConnsPerHost, ShouldEqual, 4)
			So(tr.IdleConnTimeout, ShouldEqual, 30*time.Second)
		})

		Convey("It still honours proxy settings", func() {
			So(tr.Proxy, ShouldNotBeNil)
		})

		Convey("Each call returns a fresh transport", func() {
			So(Transport(), ShouldNotPointTo, tr)
		})
	})
}
