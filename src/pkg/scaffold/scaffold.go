// Package scaffold creates a Lucid Engine project: it materializes the fixed layout under a
// project directory, then writes the literal contents of the key project files.
package scaffold

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/lucid-engine/lucid-scaffold/src/pkg/infrastructure/fs"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/infrastructure/print"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/scaffold/layout"
	"github.com/lucid-engine/lucid-scaffold/src/pkg/scaffold/materialize"
)

// Result describes a finished scaffold.
type Result struct {
	Root        string
	Report      materialize.Report
	Overwritten []string
}

// Policy is the materializer policy for the Lucid Engine layout.
func Policy() materialize.Policy {
	return materialize.Policy{
		Ignore:           layout.IgnoreFiles,
		SourceExtensions: layout.SourceExtensions,
	}
}

// Scaffold creates the project called name inside parentDir. parentDir is made absolute
// against the working directory. Running it again over an existing project only fills in
// missing entries and rewrites the overwrite files.
func Scaffold(afs afero.Afero, parentDir, name string) (result Result, err error) {
	if err = ValidateName(name); err != nil {
		return
	}

	parent, err := fs.Abs(parentDir)
	if err != nil {
		return result, errors.Wrapf(err, "failed to resolve %s", parentDir)
	}
	result.Root = filepath.Join(parent, name)

	if err = fs.EnsureDir(afs, result.Root, fs.PermDirShared); err != nil {
		return result, errors.Wrapf(err, "failed to create project directory %s", result.Root)
	}

	result.Report, err = materialize.New(afs, Policy()).Materialize(result.Root, layout.LucidEngine())
	if err != nil {
		return result, errors.Wrap(err, "failed to materialize project layout")
	}

	for _, o := range layout.Overwrites() {
		path := filepath.Join(result.Root, filepath.FromSlash(o.Path))
		err = fs.WriteFileAtomic(afs, path, []byte(o.Content), fs.PermDirShared, fs.PermFileShared)
		if err != nil {
			return result, errors.Wrapf(err, "failed to write %s", path)
		}
		print.Verb("wrote:", path)
		result.Overwritten = append(result.Overwritten, path)
	}

	return result, nil
}

// ValidateName checks that name is a single path segment usable as a directory name.
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("project name is empty")
	}
	if name == "." || name == ".." {
		return errors.Errorf("invalid project name: %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return errors.Errorf("project name must not contain path separators: %q", name)
	}
	return nil
}
