package plobcache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/remuco-cli/remuco/filesystem"
	"github.com/remuco-cli/remuco/remote"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestCache(t *testing.T) {
	Convey("Given an empty cache", t, func() {
		path := filepath.Join(t.TempDir(), "plobs.json")
		cache := New(path, time.Hour)

		Convey("Lookups miss", func() {
			So(cache.Get("1").IsPresent(), ShouldBeFalse)
		})

		Convey("Deleting a missing id is fine", func() {
			So(cache.Delete("1"), ShouldBeNil)
		})

		Convey("When a plob is stored", func() {
			plob := remote.NewPlob("12")
			plob.Set(remote.MetaArtist, "Neu!")
			So(cache.Set(plob), ShouldBeNil)

			Convey("It can be read back", func() {
				got, ok := cache.Get("12").Get()
				So(ok, ShouldBeTrue)
				So(got.Meta[remote.MetaArtist], ShouldEqual, "Neu!")
			})

			Convey("A reopened cache sees it", func() {
				got, ok := New(path, time.Hour).Get("12").Get()
				So(ok, ShouldBeTrue)
				So(got.ID, ShouldEqual, "12")
			})

			Convey("Delete removes only that id", func() {
				other := remote.NewPlob("13")
				So(cache.Set(other), ShouldBeNil)
				So(cache.Delete("12"), ShouldBeNil)

				So(cache.Get("12").IsPresent(), ShouldBeFalse)
				So(cache.Get("13").IsPresent(), ShouldBeTrue)
			})
		})
	})
}

func TestEntryLifetime(t *testing.T) {
	Convey("Given a cache with a one hour lifetime", t, func() {
		now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
		cache := New(filepath.Join(t.TempDir(), "plobs.json"), time.Hour)
		cache.now = func() time.Time { return now }

		So(cache.Set(remote.NewPlob("1")), ShouldBeNil)

		Convey("Storing other plobs does not keep an old entry alive", func() {
			now = now.Add(40 * time.Minute)
			So(cache.Set(remote.NewPlob("2")), ShouldBeNil)

			now = now.Add(40 * time.Minute)
			So(cache.Set(remote.NewPlob("3")), ShouldBeNil)

			So(cache.Get("1").IsPresent(), ShouldBeFalse)
			So(cache.Get("2").IsPresent(), ShouldBeTrue)
			So(cache.Get("3").IsPresent(), ShouldBeTrue)
		})

		Convey("An entry is valid until its own lifetime passes", func() {
			now = now.Add(59 * time.Minute)
			So(cache.Get("1").IsPresent(), ShouldBeTrue)

			now = now.Add(2 * time.Minute)
			So(cache.Get("1").IsPresent(), ShouldBeFalse)
		})

		Convey("A zero lifetime never expires", func() {
			cache.lifetime = 0
			now = now.Add(365 * 24 * time.Hour)
			So(cache.Get("1").IsPresent(), ShouldBeTrue)
		})
	})
}
