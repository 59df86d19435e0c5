// Package filesystem routes every file access of remuco through one afero
// backend, so tests can swap the disk for memory.
package filesystem

import (
	"errors"
	"os"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

func API() afero.Afero {
	return backend
}

func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a fresh in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// RemoveIfExists removes path. A missing file is not an error.
func RemoveIfExists(path string) error {
	err := API().Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
