package fs

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteFileAtomic writes data to a temporary file next to path and renames it into place,
// replacing whatever was there before.
func WriteFileAtomic(fs afero.Afero, path string, data []byte, dirPerm, filePerm os.FileMode) error {
	if err := EnsureDirForFile(fs, path, dirPerm); err != nil {
		return err
	}
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	f, err := fs.TempFile(dir, "."+base+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	cleanup := func() {
		_ = fs.Remove(tmp)
	}
	if err := fs.Chmod(tmp, PermFileTemp); err != nil {
		_ = f.Close()
		cleanup()
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		cleanup()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		cleanup()
		return err
	}
	if err := f.Close(); err != nil {
		cleanup()
		return err
	}
	if err := fs.Rename(tmp, path); err != nil {
		cleanup()
		return err
	}
	if err := fs.Chmod(path, filePerm); err != nil {
		return err
	}
	return nil
}
