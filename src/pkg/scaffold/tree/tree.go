// Package tree describes a directory layout as a recursive value: every entry is either a
// directory holding more entries or a plain file.
package tree

import (
	"path"
	"sort"
)

// Node is either a Dir or a File. The set of implementations is closed.
type Node interface {
	node()
}

// Dir maps entry names to their nodes. An empty Dir is an empty directory.
type Dir map[string]Node

// File is a leaf entry with no payload.
type File struct{}

func (Dir) node() {}
func (File) node() {}

// Kind distinguishes the two node types in flattened output.
type Kind int

const (
	KindDir Kind = iota
	KindFile
)

func (k Kind) String() string {
	if k == KindDir {
		return "dir"
	}
	return "file"
}

// Entry is one path of a flattened Dir.
type Entry struct {
	Path string // slash separated, relative to the flattened root
	Kind Kind
}

// Names returns the entry names of d in lexical order.
func Names(d Dir) []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Flatten lists every path below d, depth first, parents before children.
func Flatten(d Dir) []Entry {
	var out []Entry
	flatten("", d, &out)
	return out
}

func flatten(prefix string, d Dir, out *[]Entry) {
	for _, name := range Names(d) {
		p := path.Join(prefix, name)
		switch n := d[name].(type) {
		case Dir:
			*out = append(*out, Entry{Path: p, Kind: KindDir})
			flatten(p, n, out)
		default:
			*out = append(*out, Entry{Path: p, Kind: KindFile})
		}
	}
}

// Count returns the number of directories and files below d.
func Count(d Dir) (dirs, files int) {
	for _, e := range Flatten(d) {
		if e.Kind == KindDir {
			dirs++
		} else {
			files++
		}
	}
	return
}
