package log

import (
	"path/filepath"
	"time"

	"github.com/remuco-cli/remuco/filesystem"
)

// Prune removes .log files in dir last modified more than maxAge before now.
// It returns how many files were removed.
func Prune(dir string, maxAge time.Duration, now time.Time) (int, error) {
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".log" {
			continue
		}
		if now.Sub(e.ModTime()) <= maxAge {
			continue
		}
		if err := filesystem.API().Remove(filepath.Join(dir, e.Name())); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}
