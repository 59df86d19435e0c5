// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"

	"github.com/remuco-cli/remuco/constant"
	"github.com/remuco-cli/remuco/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the default configuration directory.
const EnvConfigPath = "REMUCO_CONFIG_PATH"

// EnvPlayerPath is the player's own variable for its IPC address.
const EnvPlayerPath = "XMMS_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the configuration directory.
// It prioritizes REMUCO_CONFIG_PATH, then the platform user config dir.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Remuco))
}

// Cache resolves the persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Remuco))
}

// Logs resolves the directory for log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Plobs resolves the track metadata cache file.
func Plobs() string {
	return filepath.Join(Cache(), "plobs.json")
}

// PlayerSocket resolves the default player IPC address.
//
// XMMS_PATH wins when set. Otherwise the player listens on a per-user unix
// socket in /tmp, or on localhost tcp where unix sockets are unavailable.
func PlayerSocket() string {
	if custom, ok := os.LookupEnv(EnvPlayerPath); ok && custom != "" {
		return custom
	}

	if runtime.GOOS == constant.Windows {
		return "tcp://127.0.0.1:9667"
	}

	name := "unknown"
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	return fmt.Sprintf("unix:///tmp/xmms-ipc-%s", name)
}
