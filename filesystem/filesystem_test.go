package filesystem

import (
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("Given the filesystem backend", t, func() {
		Convey("It can be the OS", func() {
			SetOsFs()
			So(API().Name(), ShouldEqual, "OsFs")
		})

		Convey("It can be memory", func() {
			SetMemMapFs()
			So(API().Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestRemoveIfExists(t *testing.T) {
	Convey("Given an in-memory backend", t, func() {
		SetMemMapFs()

		Convey("An existing file is removed", func() {
			So(API().WriteFile("/remuco.toml", []byte("x"), 0o644), ShouldBeNil)
			So(RemoveIfExists("/remuco.toml"), ShouldBeNil)

			exists, _ := API().Exists("/remuco.toml")
			So(exists, ShouldBeFalse)
		})

		Convey("A missing file is fine", func() {
			So(RemoveIfExists("/missing.toml"), ShouldBeNil)
		})
	})
}

func TestGacheFs(t *testing.T) {
	Convey("Given the gache adapter on memory", t, func() {
		SetMemMapFs()
		fs := GacheFs{}

		Convey("It creates directories and files on the backend", func() {
			So(fs.MkdirAll("/cache", 0o755), ShouldBeNil)

			f, err := fs.OpenFile("/cache/plobs.json", os.O_CREATE|os.O_WRONLY, 0o644)
			So(err, ShouldBeNil)
			_, err = f.Write([]byte("{}"))
			So(err, ShouldBeNil)
			So(f.Close(), ShouldBeNil)

			data, err := API().ReadFile("/cache/plobs.json")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "{}")
		})
	})
}
