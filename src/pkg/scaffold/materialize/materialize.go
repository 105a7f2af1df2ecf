// Package materialize creates a tree.Dir on a filesystem.
package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/lucid-engine/lucid-scaffold/src/pkg/infrastructure/fs"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/infrastructure/print"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/scaffold/tree"
)

// Policy decides what goes into newly created files.
type Policy struct {
	// Ignore lists file names that are always created empty.
	Ignore tree.NameSet
	// SourceExtensions lists extensions, including the dot, that get a placeholder line.
	SourceExtensions tree.NameSet
}

// Placeholder returns the content written into a new file called name.
func (p Policy) Placeholder(name string) string {
	if p.Ignore.Contains(name) {
		return ""
	}
	if p.SourceExtensions.Contains(filepath.Ext(name)) {
		return fmt.Sprintf("// TODO: Implement %s\n", name)
	}
	return ""
}

// Materializer creates directories and files described by a tree.Dir.
//
// Directories that already exist are reused. Files that already exist are never opened for
// writing, so running twice over the same base leaves earlier content as it was.
type Materializer struct {
	FS     afero.Afero
	Policy Policy
}

func New(afs afero.Afero, policy Policy) *Materializer {
	return &Materializer{FS: afs, Policy: policy}
}

// Materialize creates every entry of d below base. base itself must already exist. The first
// filesystem error stops the walk; entries created before it stay on disk.
func (m *Materializer) Materialize(base string, d tree.Dir) (report Report, err error) {
	err = m.walk(base, d, &report)
	return
}

func (m *Materializer) walk(base string, d tree.Dir, report *Report) error {
	for _, name := range tree.Names(d) {
		path := filepath.Join(base, name)
		switch n := d[name].(type) {
		case tree.Dir:
			if err := m.ensureDir(path, report); err != nil {
				return err
			}
			if err := m.walk(path, n, report); err != nil {
				return err
			}
		case tree.File:
			if err := m.ensureFile(path, name, report); err != nil {
				return err
			}
		default:
			return errors.Errorf("unknown node type %T at %s", n, path)
		}
	}
	return nil
}

func (m *Materializer) ensureDir(path string, report *Report) error {
	info, err := m.FS.Stat(path)
	switch {
	case err == nil && info.IsDir():
		print.Verb("dir exists:", path)
		report.DirsExisting++
		return nil

	case err == nil:
		return errors.Errorf("conflict: %s already exists as a file", path)

	case os.IsNotExist(err):
		if err := m.FS.MkdirAll(path, fs.PermDirShared); err != nil {
			return errors.Wrapf(err, "failed to create directory %s", path)
		}
		print.Verb("dir:", path)
		report.DirsCreated++
		report.Created = append(report.Created, tree.Entry{Path: path, Kind: tree.KindDir})
		return nil

	default:
		return errors.Wrapf(err, "failed to stat %s", path)
	}
}

func (m *Materializer) ensureFile(path, name string, report *Report) error {
	info, err := m.FS.Stat(path)
	switch {
	case err == nil && info.IsDir():
		return errors.Errorf("conflict: %s already exists as a directory", path)

	case err == nil:
		print.Verb("file exists:", path)
		report.FilesExisting++
		return nil

	case os.IsNotExist(err):
		// fall through to creation below

	default:
		return errors.Wrapf(err, "failed to stat %s", path)
	}

	f, err := m.FS.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, fs.PermFileShared)
	if err != nil {
		return errors.Wrapf(err, "failed to create file %s", path)
	}

	content := m.Policy.Placeholder(name)
	if content != "" {
		if _, err = f.WriteString(content); err != nil {
			_ = f.Close()
			return errors.Wrapf(err, "failed to write placeholder to %s", path)
		}
		report.Placeholders++
	}
	if err = f.Close(); err != nil {
		return errors.Wrapf(err, "failed to close %s", path)
	}

	print.Verb("file:", path)
	report.FilesCreated++
	report.Created = append(report.Created, tree.Entry{Path: path, Kind: tree.KindFile})
	return nil
}
