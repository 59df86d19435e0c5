package util

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "ploblist", "ploblists"), ShouldEqual, "1 ploblist")
		So(Quantify(0, "ploblist", "ploblists"), ShouldEqual, "0 ploblists")
		So(Quantify(2, "track", "tracks"), ShouldEqual, "2 tracks")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("paused"), ShouldEqual, "Paused")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestIgnore(t *testing.T) {
	Convey("Ignore calls the function", t, func() {
		called := false
		Ignore(func() error {
			called = true
			return errors.New("closed")
		})
		So(called, ShouldBeTrue)
	})
}
