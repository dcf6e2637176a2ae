// Package page holds the state of one generation run.
//
// A [Page] owns the box tree, the dependency graph recorded while laying it
// out, the property registry used for stable indices, and the constraints the
// layout is expected to satisfy. Nothing in a Page is shared with other runs,
// so independent pages can be generated and rendered concurrently.
package page

import (
	"github.com/google/uuid"

	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/constraint"
	"github.com/matzehuels/pagen/pkg/depgraph"
	"github.com/matzehuels/pagen/pkg/property"
)

// Faults counts the faults injected while laying out a page.
type Faults struct {
	HorizontalMisalignments int `json:"horizontal_misalignments"`
	VerticalMisalignments   int `json:"vertical_misalignments"`
	Overlaps                int `json:"overlaps"`
	Overflows               int `json:"overflows"`
}

// Total returns the number of injected faults.
func (f Faults) Total() int {
	return f.HorizontalMisalignments + f.VerticalMisalignments + f.Overlaps + f.Overflows
}

// Page is the context object of a run.
type Page struct {
	ID       uuid.UUID
	Seed     uint64
	Tree     *box.Tree
	Root     box.ID
	Graph    *depgraph.Graph
	Registry *property.Registry

	// Layout holds the alignment constraints emitted by flow layouts.
	Layout *constraint.Set
	// Structural holds containment and disjointness constraints derived from
	// the finished tree.
	Structural *constraint.Set

	Faults Faults
}

// New returns an empty page with a fresh run ID.
func New(seed uint64) *Page {
	return &Page{
		ID:         uuid.New(),
		Seed:       seed,
		Tree:       box.NewTree(),
		Root:       box.NoParent,
		Graph:      depgraph.New(),
		Registry:   property.NewRegistry(),
		Layout:     constraint.NewSet(),
		Structural: constraint.NewSet(),
	}
}

// RootBox returns the root box, or nil before a root is set.
func (p *Page) RootBox() *box.Box {
	return p.Tree.Box(p.Root)
}

// Depend records that attribute a1 of b1 was computed from attribute a2 of
// b2, interning both properties.
func (p *Page) Depend(b1 *box.Box, a1 property.Attribute, b2 *box.Box, a2 property.Attribute) {
	p.Registry.Intern(property.Of(b1.ID, a1))
	p.Registry.Intern(property.Of(b2.ID, a2))
	p.Graph.AddBox(b1, a1, b2, a2)
}

// DeriveStructure replaces the structural constraints with the containment
// and disjointness constraints of the current tree.
func (p *Page) DeriveStructure() {
	s := constraint.NewSet()
	if p.RootBox() != nil {
		s.Union(constraint.Containment(p.Tree, p.Root))
		s.Union(constraint.Disjointness(p.Tree, p.Root))
	}
	p.Structural = s
}

// AllConstraints returns the layout constraints followed by the structural
// ones.
func (p *Page) AllConstraints() []*constraint.Constraint {
	return constraint.NewSet().Union(p.Layout).Union(p.Structural).All()
}

// Handle returns the stable index of a property on this page.
func (p *Page) Handle(prop property.Property) property.Handle {
	return p.Registry.Intern(prop)
}
