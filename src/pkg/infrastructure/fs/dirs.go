package fs

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// EnsureDir creates dir and its parents. An existing directory is left alone, an existing
// file at that path is an error.
func EnsureDir(fs afero.Afero, dir string, perm os.FileMode) error {
	info, err := fs.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.Errorf("%s exists and is not a directory", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to stat %s", dir)
	}
	return fs.MkdirAll(dir, perm)
}

func EnsureDirForFile(fs afero.Afero, path string, perm os.FileMode) error {
	return EnsureDir(fs, filepath.Dir(path), perm)
}
