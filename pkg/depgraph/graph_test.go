package depgraph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/property"
)

const (
	boxA box.ID = iota
	boxB
	boxC
	boxD
	boxE
)

func prop(b box.ID, a property.Attribute) property.Property { return property.Of(b, a) }

// fanOut builds B.X<-A.X, C.X<-A.X, D.X<-B.X, E.X<-B.X.
func fanOut() *Graph {
	return New().
		Add(prop(boxB, property.X), prop(boxA, property.X)).
		Add(prop(boxC, property.X), prop(boxA, property.X)).
		Add(prop(boxD, property.X), prop(boxB, property.X)).
		Add(prop(boxE, property.X), prop(boxB, property.X))
}

func TestTransitiveClosureAll(t *testing.T) {
	closure := fanOut().TransitiveClosure()
	require.Len(t, closure, 5)

	tests := []struct {
		start property.Property
		want  property.Set
	}{
		{prop(boxA, property.X), property.NewSet(prop(boxA, property.DX))},
		{prop(boxB, property.X), property.NewSet(prop(boxA, property.DX), prop(boxB, property.DX))},
		{prop(boxD, property.X), property.NewSet(prop(boxA, property.DX), prop(boxB, property.DX), prop(boxD, property.DX))},
	}
	for _, tt := range tests {
		t.Run(tt.start.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, closure[tt.start]); diff != "" {
				t.Errorf("closure mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTransitiveClosureStopsAtOwnBox(t *testing.T) {
	g := New().
		Add(prop(boxB, property.X), prop(boxA, property.X)).
		Add(prop(boxA, property.X), prop(boxC, property.W)).
		Add(prop(boxC, property.W), prop(boxB, property.W)).
		Add(prop(boxC, property.W), prop(boxD, property.X)).
		Add(prop(boxB, property.W), prop(boxE, property.W))

	closure := g.TransitiveClosure()
	require.Len(t, closure, 6)

	want := property.NewSet(
		prop(boxB, property.DX),
		prop(boxA, property.DX),
		prop(boxC, property.DW),
		prop(boxD, property.DX),
	)
	if diff := cmp.Diff(want, closure[prop(boxB, property.X)]); diff != "" {
		t.Errorf("closure(B.X) mismatch (-want +got):\n%s", diff)
	}
}

func TestTransitiveClosureSelectedStart(t *testing.T) {
	closure := fanOut().TransitiveClosure(prop(boxB, property.X))
	require.Len(t, closure, 1)
	assert.Equal(t, property.NewSet(prop(boxA, property.DX), prop(boxB, property.DX)), closure[prop(boxB, property.X)])
	assert.NotContains(t, closure, prop(boxD, property.X))
}

func TestTransitiveClosureUnknown(t *testing.T) {
	p := prop(boxE, property.H)
	closure := New().TransitiveClosure(p)
	assert.Equal(t, property.NewSet(p.Delta()), closure[p])
}

func TestInfluenceDirection(t *testing.T) {
	g := fanOut()

	assert.ElementsMatch(t, []Dependency{
		{From: prop(boxB, property.X), To: prop(boxA, property.X)},
		{From: prop(boxC, property.X), To: prop(boxA, property.X)},
	}, g.Influences(prop(boxA, property.X), false))

	assert.ElementsMatch(t, []Dependency{
		{From: prop(boxB, property.X), To: prop(boxA, property.X)},
	}, g.InfluencedBy(prop(boxB, property.X), false))

	assert.Empty(t, g.InfluencedBy(prop(boxA, property.X), false))
	assert.Empty(t, g.Influences(prop(boxD, property.X), false))
	assert.Empty(t, g.Influences(prop(boxD, property.H), true), "unknown property")
}

func TestTransitiveInfluences(t *testing.T) {
	g := fanOut()
	got := g.Influences(prop(boxA, property.X), true)
	assert.Len(t, got, 4)

	got = g.InfluencedBy(prop(boxE, property.X), true)
	assert.ElementsMatch(t, []Dependency{
		{From: prop(boxE, property.X), To: prop(boxB, property.X)},
		{From: prop(boxB, property.X), To: prop(boxA, property.X)},
	}, got)
}

func TestTransitiveScanDoesNotReenterStartBox(t *testing.T) {
	// A.W <- B.X <- A.X: walking from A.X reaches B.X and stops expanding
	// at A.W, which belongs to the start box.
	g := New().
		Add(prop(boxB, property.X), prop(boxA, property.X)).
		Add(prop(boxA, property.W), prop(boxB, property.X)).
		Add(prop(boxC, property.X), prop(boxA, property.W))

	got := g.Influences(prop(boxA, property.X), true)
	assert.Len(t, got, 2)
	for _, d := range got {
		assert.NotEqual(t, boxC, d.From.Box)
	}
}

func TestBoxInfluences(t *testing.T) {
	g := fanOut()
	tests := []struct {
		a, b box.ID
		want bool
	}{
		{boxA, boxB, true},
		{boxA, boxE, true},
		{boxB, boxA, false},
		{boxD, boxE, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, g.BoxInfluences(tt.a, tt.b), "BoxInfluences(%d, %d)", tt.a, tt.b)
	}

	// Y counts as well as X.
	g.Add(prop(boxC, property.Y), prop(boxD, property.Y))
	assert.True(t, g.BoxInfluences(boxD, boxC))
}

func TestAddIsIdempotent(t *testing.T) {
	g := fanOut()
	g.Add(prop(boxB, property.X), prop(boxA, property.X))
	g.AddAll(Dependency{From: prop(boxC, property.X), To: prop(boxA, property.X)})

	assert.Equal(t, 4, g.EdgeCount())
	assert.Equal(t, 5, g.NodeCount())
	assert.Len(t, g.Influences(prop(boxA, property.X), false), 2)
}

func TestAddBoxAndNodes(t *testing.T) {
	tr := box.NewTree()
	a := tr.New(0, 0, 1, 1)
	b := tr.New(0, 0, 1, 1)

	g := New().AddBox(b, property.X, a, property.W)
	assert.True(t, g.Has(prop(b.ID, property.X)))
	assert.True(t, g.Has(prop(a.ID, property.W)))
	assert.Equal(t, []property.Property{prop(a.ID, property.W), prop(b.ID, property.X)}, g.Nodes())
	assert.Equal(t, "x(1) <- w(0)", g.Edges()[0].String())
}
