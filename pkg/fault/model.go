package fault

import (
	"context"
	"slices"

	"github.com/matzehuels/pagen/pkg/constraint"
	"github.com/matzehuels/pagen/pkg/depgraph"
	"github.com/matzehuels/pagen/pkg/property"
)

// DeltaAttributes lists the delta attributes in variable-array order.
var DeltaAttributes = []property.Attribute{property.DX, property.DY, property.DW, property.DH}

// Model is a closure-reduced repair model.
type Model struct {
	*Result

	// Closure maps each faulty property to the deltas that can shift it.
	Closure map[property.Property]property.Set

	deltas map[property.Attribute][]property.Property
}

// Reduce runs [Closure] over cs and resolves the delta variables the
// reduced model declares. Both walks stop with ctx.Err() once ctx is done.
func Reduce(ctx context.Context, cs []*constraint.Constraint, g *depgraph.Graph) (*Model, error) {
	res, err := Closure(ctx, cs, g)
	if err != nil {
		return nil, err
	}
	m := &Model{
		Result:  res,
		Closure: make(map[property.Property]property.Set, len(res.Faulty)),
		deltas:  make(map[property.Attribute][]property.Property, len(DeltaAttributes)),
	}
	for i, p := range res.Faulty.Sorted() {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		m.Closure[p] = g.TransitiveClosure(p)[p]
	}
	all := property.NewSet()
	for _, ds := range m.Closure {
		all.AddAll(ds)
	}
	for _, a := range DeltaAttributes {
		m.deltas[a] = all.Filter(a)
	}
	return m, nil
}

// Deltas returns the delta variables of attribute a, sorted.
func (m *Model) Deltas(a property.Attribute) []property.Property {
	return m.deltas[a.Delta()]
}

// Index returns the position of delta d in its variable array, or -1.
func (m *Model) Index(d property.Property) int {
	i, ok := slices.BinarySearchFunc(m.deltas[d.Attr], d, property.Compare)
	if !ok {
		return -1
	}
	return i
}

// Variables returns the number of delta variables.
func (m *Model) Variables() int {
	n := 0
	for _, ds := range m.deltas {
		n += len(ds)
	}
	return n
}

// Terms returns the deltas that appear next to the generated value of p:
// the members of p's closure whose absolute property is faulty. Properties
// outside the faulty set have no terms.
func (m *Model) Terms(p property.Property) []property.Property {
	var out []property.Property
	for _, d := range m.Closure[p].Sorted() {
		if m.Faulty.Has(d.Absolute()) {
			out = append(out, d)
		}
	}
	return out
}
