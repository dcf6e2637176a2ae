package generate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/constraint"
	"github.com/matzehuels/pagen/pkg/page"
	"github.com/matzehuels/pagen/pkg/property"
)

func leaves(pg *page.Page, sizes ...[2]float64) []*box.Box {
	out := make([]*box.Box, len(sizes))
	for i, s := range sizes {
		out[i] = pg.Tree.New(0, 0, s[0], s[1])
	}
	return out
}

func newParent(pg *page.Page) *box.Box {
	p := pg.Tree.New(0, 0, 0, 0)
	p.Padding = 2
	return p
}

func TestHorizontalFlowPlacement(t *testing.T) {
	pg := page.New(0)
	kids := leaves(pg, [2]float64{5, 4}, [2]float64{7, 6}, [2]float64{3, 2})
	parent := newParent(pg)

	f := HorizontalFlow(nil)
	f.Arrange(pg, parent, kids)

	assert.Equal(t, []float64{2, 9, 18}, []float64{kids[0].X, kids[1].X, kids[2].X})
	for _, k := range kids {
		assert.Equal(t, 2.0, k.Y)
		assert.Equal(t, parent.ID, k.Parent)
	}
	assert.Equal(t, 23.0, parent.Width)
	assert.Equal(t, 10.0, parent.Height)

	require.Equal(t, 1, f.Constraints().Len())
	row := f.Constraints().All()[0]
	assert.Equal(t, constraint.AxisY, row.Axis())
	assert.True(t, row.Verdict())
	assert.Zero(t, f.Misalignments())
}

func TestFlowRecordsInfluenceEdges(t *testing.T) {
	pg := page.New(0)
	kids := leaves(pg, [2]float64{5, 4}, [2]float64{7, 6})
	parent := newParent(pg)
	HorizontalFlow(nil).Arrange(pg, parent, kids)

	g := pg.Graph
	from := func(b *box.Box, a property.Attribute) []property.Property {
		var out []property.Property
		for _, d := range g.InfluencedBy(property.Of(b.ID, a), false) {
			out = append(out, d.To)
		}
		return out
	}
	assert.Equal(t, []property.Property{property.Of(parent.ID, property.X)}, from(kids[0], property.X))
	assert.ElementsMatch(t, []property.Property{
		property.Of(kids[0].ID, property.X),
		property.Of(kids[0].ID, property.W),
	}, from(kids[1], property.X))
	assert.Equal(t, []property.Property{property.Of(parent.ID, property.Y)}, from(kids[1], property.Y))
	assert.Len(t, from(parent, property.W), 4)
	assert.Len(t, from(parent, property.H), 4)

	assert.True(t, g.BoxInfluences(parent.ID, kids[1].ID))
	assert.True(t, g.BoxInfluences(kids[0].ID, kids[1].ID))
	assert.False(t, g.BoxInfluences(kids[1].ID, kids[0].ID))
}

func TestHorizontalFlowWraps(t *testing.T) {
	pg := page.New(0)
	kids := leaves(pg, [2]float64{5, 4}, [2]float64{5, 6}, [2]float64{5, 3})
	parent := newParent(pg)

	f := HorizontalFlow(Constant[int]{Value: 2})
	f.Arrange(pg, parent, kids)

	assert.Equal(t, 2.0, kids[2].X)
	assert.Equal(t, 10.0, kids[2].Y, "second row starts below the tallest box of the first")
	assert.Equal(t, 1, f.Constraints().Len(), "single-box rows emit no constraint")

	in := pg.Graph.InfluencedBy(property.Of(kids[2].ID, property.Y), false)
	require.Len(t, in, 2)
	for _, d := range in {
		assert.Equal(t, kids[1].ID, d.To.Box)
	}

	cs := constraint.Disjointness(pg.Tree, parent.ID)
	assert.Empty(t, cs.Violated())
}

func TestVerticalFlow(t *testing.T) {
	pg := page.New(0)
	kids := leaves(pg, [2]float64{5, 4}, [2]float64{8, 6}, [2]float64{3, 3})
	parent := newParent(pg)

	f := VerticalFlow(Constant[int]{Value: 2})
	f.Arrange(pg, parent, kids)

	assert.Equal(t, []float64{2, 8}, []float64{kids[0].Y, kids[1].Y})
	assert.Equal(t, 2.0, kids[2].Y)
	assert.Equal(t, 12.0, kids[2].X)
	require.Equal(t, 1, f.Constraints().Len())
	assert.Equal(t, constraint.AxisX, f.Constraints().All()[0].Axis())
	assert.Empty(t, constraint.Containment(pg.Tree, parent.ID).Violated())
}

func TestMisalignmentFault(t *testing.T) {
	pg := page.New(0)
	kids := leaves(pg, [2]float64{5, 4}, [2]float64{5, 4})
	parent := newParent(pg)

	f := HorizontalFlow(nil)
	f.SetAlignmentFault(Constant[bool]{Value: true}, Constant[int]{Value: 3})
	f.Arrange(pg, parent, kids)

	assert.Equal(t, 2, f.Misalignments())
	for _, k := range kids {
		assert.True(t, k.Altered)
		assert.Equal(t, 5.0, k.Y)
	}
	assert.Empty(t, constraint.Containment(pg.Tree, parent.ID).Violated(), "parent grows to cover the shift")
}

func TestOverlapFault(t *testing.T) {
	pg := page.New(0)
	kids := leaves(pg, [2]float64{5, 4}, [2]float64{5, 4}, [2]float64{5, 4})
	parent := newParent(pg)

	f := HorizontalFlow(nil)
	f.SetOverlapFault(Constant[bool]{Value: true}, Constant[int]{Value: 3})
	f.Arrange(pg, parent, kids)

	assert.Equal(t, 2, f.Overlaps(), "the last child never overlaps")
	assert.Equal(t, 10.0, kids[0].Width)
	assert.False(t, kids[2].Altered)
	assert.Len(t, constraint.Disjointness(pg.Tree, parent.ID).Violated(), 2)
}

// countingToss always picks v and counts its draws.
type countingToss struct {
	v     bool
	draws int
}

func (c *countingToss) Pick() bool {
	c.draws++
	return c.v
}

func TestOverlapTossedForMisalignedChildren(t *testing.T) {
	pg := page.New(0)
	kids := leaves(pg, [2]float64{5, 4}, [2]float64{5, 4}, [2]float64{5, 4}, [2]float64{5, 4})
	parent := newParent(pg)

	toss := &countingToss{v: true}
	f := HorizontalFlow(nil)
	f.SetAlignmentFault(Constant[bool]{Value: true}, Constant[int]{Value: 3})
	f.SetOverlapFault(toss, Constant[int]{Value: 3})
	f.Arrange(pg, parent, kids)

	assert.Equal(t, 3, toss.draws, "every child but the last tosses")
	assert.Zero(t, f.Overlaps(), "misaligned children never overlap")
	assert.Equal(t, 4, f.Misalignments())
}

func TestOverflowFault(t *testing.T) {
	pg := page.New(0)
	kids := leaves(pg, [2]float64{5, 4}, [2]float64{5, 4})
	parent := newParent(pg)

	f := VerticalFlow(nil)
	f.SetOverflowFault(Constant[bool]{Value: true}, Constant[int]{Value: 4})
	f.Arrange(pg, parent, kids)

	assert.Equal(t, 1, f.Overflows())
	assert.Equal(t, -2.0, kids[0].Y)
	assert.True(t, kids[0].Altered)
	assert.Len(t, constraint.Containment(pg.Tree, parent.ID).Violated(), 1)
}

func TestArrangeEmpty(t *testing.T) {
	pg := page.New(0)
	parent := newParent(pg)
	f := HorizontalFlow(nil)
	f.Arrange(pg, parent, nil)
	assert.Zero(t, parent.Width)
	assert.Zero(t, pg.Graph.EdgeCount())
	assert.Zero(t, f.Constraints().Len())
}
