package constraint

import (
	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/depgraph"
	"github.com/matzehuels/pagen/pkg/property"
)

// Set is an insertion-ordered collection of valid, distinct constraints.
// The zero value is an empty set ready to use.
type Set struct {
	items []*Constraint
	keys  map[string]int
}

// NewSet returns a set holding the valid constraints among cs.
func NewSet(cs ...*Constraint) *Set {
	s := &Set{}
	s.Add(cs...)
	return s
}

// Add inserts each valid constraint not already present and returns the
// number added. Invalid constraints are dropped.
func (s *Set) Add(cs ...*Constraint) int {
	if s.keys == nil {
		s.keys = make(map[string]int)
	}
	n := 0
	for _, c := range cs {
		if c == nil || !c.Valid() {
			continue
		}
		k := c.Key()
		if _, ok := s.keys[k]; ok {
			continue
		}
		s.keys[k] = len(s.items)
		s.items = append(s.items, c)
		n++
	}
	return n
}

// Union adds every constraint of o to s.
func (s *Set) Union(o *Set) *Set {
	if o != nil {
		s.Add(o.items...)
	}
	return s
}

// Has reports whether a constraint with the same key as c is present.
func (s *Set) Has(c *Constraint) bool {
	_, ok := s.keys[c.Key()]
	return ok
}

// Len returns the number of constraints.
func (s *Set) Len() int { return len(s.items) }

// All returns the constraints in insertion order.
func (s *Set) All() []*Constraint {
	out := make([]*Constraint, len(s.items))
	copy(out, s.items)
	return out
}

// Violated returns the constraints whose verdict is false.
func (s *Set) Violated() []*Constraint {
	var out []*Constraint
	for _, c := range s.items {
		if !c.Verdict() {
			out = append(out, c)
		}
	}
	return out
}

// CountKind returns the number of constraints of kind k.
func (s *Set) CountKind(k Kind) int {
	n := 0
	for _, c := range s.items {
		if c.kind == k {
			n++
		}
	}
	return n
}

// Index maps every property to the valid constraints that concern it.
type Index map[property.Property][]*Constraint

// BuildIndex indexes cs by [Constraint.Properties] with no changed property.
// Invalid constraints are skipped.
func BuildIndex(g *depgraph.Graph, cs []*Constraint) Index {
	idx := make(Index)
	for _, c := range cs {
		if !c.Valid() {
			continue
		}
		for _, p := range c.Properties(g, nil).Sorted() {
			idx[p] = append(idx[p], c)
		}
	}
	return idx
}

// Containment returns a Contained constraint for every parent/child pair in
// the subtree rooted at root.
func Containment(t *box.Tree, root box.ID) *Set {
	s := NewSet()
	t.Walk(root, func(b *box.Box, _ int) bool {
		for _, c := range t.Children(b.ID) {
			s.Add(Contained(b, c))
		}
		return true
	})
	return s
}

// Disjointness returns a Disjoint constraint for every pair of siblings in
// the subtree rooted at root.
func Disjointness(t *box.Tree, root box.ID) *Set {
	s := NewSet()
	t.Walk(root, func(b *box.Box, _ int) bool {
		kids := t.Children(b.ID)
		for i := range kids {
			for j := i + 1; j < len(kids); j++ {
				s.Add(Disjoint(kids[i], kids[j]))
			}
		}
		return true
	})
	return s
}
