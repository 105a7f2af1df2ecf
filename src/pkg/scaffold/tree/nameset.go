package tree

import "sort"

// NameSet is an immutable set of names. The zero value is empty and ready to use.
type NameSet struct {
	m map[string]struct{}
}

// NewNameSet copies names into a new set.
func NewNameSet(names ...string) NameSet {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return NameSet{m: m}
}

func (s NameSet) Contains(name string) bool {
	_, ok := s.m[name]
	return ok
}

func (s NameSet) Len() int {
	return len(s.m)
}

// Names returns a sorted copy of the set's contents.
func (s NameSet) Names() []string {
	out := make([]string, 0, len(s.m))
	for n := range s.m {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
