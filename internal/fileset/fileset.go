package fileset

import "sort"

// Set is a set of absolute filesystem paths.
type Set map[string]struct{}

// New builds a Set from the given paths.
func New(paths ...string) Set {
	s := make(Set, len(paths))
	for _, p := range paths {
		s.Add(p)
	}
	return s
}

// Add inserts a path into the set.
func (s Set) Add(path string) {
	s[path] = struct{}{}
}

// Contains reports whether path is in the set.
func (s Set) Contains(path string) bool {
	_, ok := s[path]
	return ok
}

// Diff returns the paths in s that are not in other.
func (s Set) Diff(other Set) Set {
	out := make(Set)
	for p := range s {
		if !other.Contains(p) {
			out.Add(p)
		}
	}
	return out
}

// Sorted returns the set's paths in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}
