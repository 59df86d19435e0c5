package where

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/remuco-cli/remuco/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Plobs() lives in the cache dir", func() {
			So(filepath.Dir(Plobs()), ShouldEqual, Cache())
		})
	})
}

func TestPlayerSocket(t *testing.T) {
	Convey("PlayerSocket", t, func() {
		Convey("XMMS_PATH takes precedence", func() {
			old, had := os.LookupEnv(EnvPlayerPath)
			defer func() {
				if had {
					_ = os.Setenv(EnvPlayerPath, old)
				} else {
					_ = os.Unsetenv(EnvPlayerPath)
				}
			}()

			So(os.Setenv(EnvPlayerPath, "tcp://10.0.0.2:9667"), ShouldBeNil)
			So(PlayerSocket(), ShouldEqual, "tcp://10.0.0.2:9667")
		})

		Convey("Falls back to a scheme-qualified address", func() {
			old, had := os.LookupEnv(EnvPlayerPath)
			defer func() {
				if had {
					_ = os.Setenv(EnvPlayerPath, old)
				}
			}()

			So(os.Unsetenv(EnvPlayerPath), ShouldBeNil)
			addr := PlayerSocket()
			So(strings.HasPrefix(addr, "unix://") || strings.HasPrefix(addr, "tcp://"), ShouldBeTrue)
		})
	})
}
