package depgraph

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/property"
)

// Dependency is an influence edge: From is influenced by To.
type Dependency struct {
	From property.Property
	To   property.Property
}

func (d Dependency) String() string {
	return fmt.Sprintf("%s <- %s", d.From, d.To)
}

// Compare orders dependencies by From, then To.
func Compare(a, b Dependency) int {
	return cmp.Or(property.Compare(a.From, b.From), property.Compare(a.To, b.To))
}

// Graph is a directed multigraph of influence edges. The zero value is not
// usable; create graphs with [New]. A Graph is not safe for concurrent use.
type Graph struct {
	influencedBy map[property.Property][]Dependency
	influences   map[property.Property][]Dependency
	edges        map[Dependency]struct{}
	order        []Dependency
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		influencedBy: make(map[property.Property][]Dependency),
		influences:   make(map[property.Property][]Dependency),
		edges:        make(map[Dependency]struct{}),
	}
}

// Add records that influenced was computed from influencing. Both endpoints
// become known to the graph. Adding an existing edge is a no-op.
func (g *Graph) Add(influenced, influencing property.Property) *Graph {
	g.touch(influenced)
	g.touch(influencing)
	d := Dependency{From: influenced, To: influencing}
	if _, ok := g.edges[d]; ok {
		return g
	}
	g.edges[d] = struct{}{}
	g.order = append(g.order, d)
	g.influencedBy[influenced] = append(g.influencedBy[influenced], d)
	g.influences[influencing] = append(g.influences[influencing], d)
	return g
}

// AddBox is [Graph.Add] in (box, attribute, box, attribute) form: attribute
// a1 of b1 is influenced by attribute a2 of b2.
func (g *Graph) AddBox(b1 *box.Box, a1 property.Attribute, b2 *box.Box, a2 property.Attribute) *Graph {
	return g.Add(property.Of(b1.ID, a1), property.Of(b2.ID, a2))
}

// AddAll inserts every dependency in deps.
func (g *Graph) AddAll(deps ...Dependency) *Graph {
	for _, d := range deps {
		g.Add(d.From, d.To)
	}
	return g
}

func (g *Graph) touch(p property.Property) {
	if _, ok := g.influencedBy[p]; !ok {
		g.influencedBy[p] = nil
	}
	if _, ok := g.influences[p]; !ok {
		g.influences[p] = nil
	}
}

// Has reports whether p appears in any edge.
func (g *Graph) Has(p property.Property) bool {
	_, ok := g.influencedBy[p]
	return ok
}

// NodeCount returns the number of known properties.
func (g *Graph) NodeCount() int { return len(g.influencedBy) }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.order) }

// Nodes returns every known property in canonical order.
func (g *Graph) Nodes() []property.Property {
	out := make([]property.Property, 0, len(g.influencedBy))
	for p := range g.influencedBy {
		out = append(out, p)
	}
	slices.SortFunc(out, property.Compare)
	return out
}

// Edges returns every edge in insertion order.
func (g *Graph) Edges() []Dependency {
	return slices.Clone(g.order)
}

// InfluencedBy returns the edges whose From is p. With transitive set, it
// follows To endpoints breadth-first, without expanding through properties
// of p's box, and returns every edge visited.
func (g *Graph) InfluencedBy(p property.Property, transitive bool) []Dependency {
	if !transitive {
		return slices.Clone(g.influencedBy[p])
	}
	return g.walk(p, g.influencedBy, func(d Dependency) property.Property { return d.To })
}

// Influences returns the edges whose To is p. With transitive set, it
// follows From endpoints breadth-first, without expanding through properties
// of p's box, and returns every edge visited.
func (g *Graph) Influences(p property.Property, transitive bool) []Dependency {
	if !transitive {
		return slices.Clone(g.influences[p])
	}
	return g.walk(p, g.influences, func(d Dependency) property.Property { return d.From })
}

func (g *Graph) walk(start property.Property, index map[property.Property][]Dependency, next func(Dependency) property.Property) []Dependency {
	var out []Dependency
	seen := make(map[Dependency]struct{})
	queue := slices.Clone(index[start])
	for len(queue) > 0 {
		d := queue[0]
		queue = queue[1:]
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
		if target := next(d); target.Box != start.Box {
			queue = append(queue, index[target]...)
		}
	}
	return out
}

// TransitiveClosure maps each start property to the deltas of every
// property reachable from it through InfluencedBy edges, itself included.
// The walk never enters a property of the start's own box other than the
// start itself. With no arguments, every known property is a start.
func (g *Graph) TransitiveClosure(start ...property.Property) map[property.Property]property.Set {
	if len(start) == 0 {
		start = g.Nodes()
	}
	out := make(map[property.Property]property.Set, len(start))
	for _, s := range start {
		out[s] = g.closure(s)
	}
	return out
}

func (g *Graph) closure(start property.Property) property.Set {
	deltas := property.NewSet()
	queued := property.NewSet(start)
	queue := []property.Property{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		deltas.Add(p.Delta())
		for _, d := range g.influencedBy[p] {
			if d.To.Box == start.Box || queued.Has(d.To) {
				continue
			}
			queued.Add(d.To)
			queue = append(queue, d.To)
		}
	}
	return deltas
}

// BoxInfluences reports whether a's position influences any property of b,
// transitively, through a's X or Y.
func (g *Graph) BoxInfluences(a, b box.ID) bool {
	for _, attr := range []property.Attribute{property.X, property.Y} {
		for _, d := range g.Influences(property.Of(a, attr), true) {
			if d.From.Box == b {
				return true
			}
		}
	}
	return false
}
