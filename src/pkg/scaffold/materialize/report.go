package materialize

import (
	"github.com/lucid-engine/lucid-scaffold/src/pkg/scaffold/tree"
)

// Report summarises a Materialize call.
type Report struct {
	DirsCreated   int
	DirsExisting  int
	FilesCreated  int
	FilesExisting int
	Placeholders  int
	// Created holds every new path in creation order.
	Created []tree.Entry
}

// Rows returns the report as label/count pairs for tabular output.
func (r Report) Rows() [][]interface{} {
	return [][]interface{}{
		{"directories created", r.DirsCreated},
		{"directories existing", r.DirsExisting},
		{"files created", r.FilesCreated},
		{"files left untouched", r.FilesExisting},
		{"placeholders written", r.Placeholders},
	}
}
