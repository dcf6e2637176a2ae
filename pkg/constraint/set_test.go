package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/depgraph"
	"github.com/matzehuels/pagen/pkg/property"
)

// sampleTree builds root(0) with children 1, 2, 3 and a grandchild 4
// under 1.
func sampleTree() *box.Tree {
	tr := box.NewTree()
	root := tr.New(0, 0, 0, 0)
	for i := 0; i < 3; i++ {
		c := tr.New(float64(i*12), 0, 10, 10)
		_ = tr.AddChild(root.ID, c.ID)
	}
	g := tr.New(2, 2, 4, 4)
	_ = tr.AddChild(1, g.ID)
	return tr
}

func TestSetDropsInvalidAndDuplicates(t *testing.T) {
	tr := sampleTree()
	a, b := tr.Box(1), tr.Box(2)

	s := NewSet(
		Aligned(AxisY, a),
		Disjoint(a, a),
		Disjoint(a, b),
		Disjoint(a, b),
		Aligned(AxisY, a, b),
		Aligned(AxisY, b, a),
	)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has(Disjoint(a, b)))
	assert.False(t, s.Has(Contained(a, b)))

	var zero Set
	assert.Equal(t, 1, zero.Add(Contained(a, b)))
	s.Union(&zero)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 1, s.CountKind(KindContained))
}

func TestStructuralConstraints(t *testing.T) {
	tr := sampleTree()

	contained := Containment(tr, 0)
	assert.Equal(t, 4, contained.Len())
	assert.Empty(t, contained.Violated())

	disjoint := Disjointness(tr, 0)
	assert.Equal(t, 3, disjoint.Len(), "three siblings give three pairs")
	assert.Empty(t, disjoint.Violated())

	tr.Box(3).X = 15
	fresh := Disjointness(tr, 0)
	assert.Len(t, fresh.Violated(), 1)
}

func TestBuildIndex(t *testing.T) {
	tr := sampleTree()
	a, b := tr.Box(1), tr.Box(2)
	cs := []*Constraint{Aligned(AxisY, a, b), Disjoint(a, b), Aligned(AxisX, a)}

	idx := BuildIndex(depgraph.New(), cs)
	assert.Len(t, idx[property.Of(a.ID, property.Y)], 2)
	assert.Len(t, idx[property.Of(a.ID, property.W)], 1)
	assert.Empty(t, idx[property.Of(a.ID, property.DX)])
	for _, list := range idx {
		for _, c := range list {
			assert.True(t, c.Valid())
		}
	}
}
