package property

import (
	"maps"
	"slices"
)

// Set is an unordered collection of properties.
type Set map[Property]struct{}

// NewSet returns a set holding ps.
func NewSet(ps ...Property) Set {
	s := make(Set, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p and reports whether it was absent.
func (s Set) Add(p Property) bool {
	if _, ok := s[p]; ok {
		return false
	}
	s[p] = struct{}{}
	return true
}

// Has reports whether p is in the set.
func (s Set) Has(p Property) bool {
	_, ok := s[p]
	return ok
}

// AddAll inserts every member of o.
func (s Set) AddAll(o Set) {
	maps.Copy(s, o)
}

// Sorted returns the members in canonical order.
func (s Set) Sorted() []Property {
	return slices.SortedFunc(maps.Keys(s), Compare)
}

// Filter returns the members whose attribute is a.
func (s Set) Filter(a Attribute) []Property {
	var out []Property
	for _, p := range s.Sorted() {
		if p.Attr == a {
			out = append(out, p)
		}
	}
	return out
}
