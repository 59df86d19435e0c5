package log

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/remuco-cli/remuco/filesystem"
	"github.com/remuco-cli/remuco/key"
	"github.com/remuco-cli/remuco/where"
	"github.com/samber/lo"
	logrus "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logs.write is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		defer viper.Set(key.LogsWrite, false)

		Convey("Setup creates a daily log file", func() {
			So(Setup(), ShouldBeNil)
			files := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(files, ShouldNotBeEmpty)
			So(logrus.GetLevel(), ShouldEqual, logrus.DebugLevel)
		})
	})

	Convey("Given an unknown level", t, func() {
		viper.Set(key.LogsLevel, "chatty")

		Convey("Setup falls back to info", func() {
			So(Setup(), ShouldBeNil)
			So(logrus.GetLevel(), ShouldEqual, logrus.InfoLevel)
		})
	})
}

func TestPrune(t *testing.T) {
	Convey("Given old and fresh log files", t, func() {
		fs := filesystem.API()
		dir := "/prune-test"
		now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

		write := func(name string, age time.Duration) {
			path := filepath.Join(dir, name)
			lo.Must0(fs.WriteFile(path, []byte("x"), 0o644))
			lo.Must0(fs.Chtimes(path, now.Add(-age), now.Add(-age)))
		}

		lo.Must0(fs.MkdirAll(dir, 0o755))
		write("2026-03-01.log", 9*24*time.Hour)
		write("2026-03-09.log", 24*time.Hour)
		write("notes.txt", 30*24*time.Hour)

		Convey("Only expired .log files are removed", func() {
			n, err := Prune(dir, 7*24*time.Hour, now)
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 1)

			names := lo.Map(lo.Must(fs.ReadDir(dir)), func(fi os.FileInfo, _ int) string {
				return fi.Name()
			})
			So(names, ShouldResemble, []string{"2026-03-09.log", "notes.txt"})
		})
	})
}
