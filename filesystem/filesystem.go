// Package filesystem holds the afero backend every file operation of the CLI goes through.
// Tests swap it for an in-memory one.
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

func API() afero.Afero {
	return backend
}

// SetOsFs restores the native filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs replaces the backend with an empty in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Clear removes the contents of dir but keeps dir itself. It returns the number of bytes freed.
func Clear(dir string) (int64, error) {
	var freed int64

	entries, err := backend.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		size, err := Size(path)
		if err != nil {
			return freed, err
		}

		if err := backend.RemoveAll(path); err != nil {
			return freed, err
		}
		freed += size
	}

	return freed, nil
}

// Size sums the sizes of the regular files below path.
func Size(path string) (int64, error) {
	var size int64
	err := backend.Walk(path, func(_ string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}
