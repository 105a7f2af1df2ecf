// Package fs wraps filesystem access behind afero so the same code can run against the OS,
// an in-memory filesystem or a copy-on-write overlay.
package fs

import (
	"github.com/spf13/afero"
)

// NewOsFs returns a filesystem backed by the operating system.
func NewOsFs() afero.Afero {
	return afero.Afero{Fs: afero.NewOsFs()}
}

// NewMemFs returns an empty in-memory filesystem.
func NewMemFs() afero.Afero {
	return afero.Afero{Fs: afero.NewMemMapFs()}
}

// NewDryRunFs layers an in-memory filesystem over a read-only view of base. Writes land in
// memory only, reads fall through to base.
func NewDryRunFs(base afero.Afero) afero.Afero {
	return afero.Afero{
		Fs: afero.NewCopyOnWriteFs(afero.NewReadOnlyFs(base.Fs), afero.NewMemMapFs()),
	}
}
