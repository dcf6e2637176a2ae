package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagen/pkg/box"
)

func TestDeltaAbsolute(t *testing.T) {
	tests := []struct {
		abs, delta Attribute
	}{
		{X, DX},
		{Y, DY},
		{W, DW},
		{H, DH},
	}
	for _, tt := range tests {
		t.Run(tt.abs.String(), func(t *testing.T) {
			assert.Equal(t, tt.delta, tt.abs.Delta())
			assert.Equal(t, tt.abs, tt.delta.Absolute())
			assert.Equal(t, tt.delta, tt.delta.Delta(), "delta of a delta is itself")
			assert.Equal(t, tt.abs, tt.abs.Absolute(), "absolute of an absolute is itself")
			assert.True(t, tt.delta.IsDelta())
			assert.False(t, tt.abs.IsDelta())
		})
	}
}

func TestPropertyEquality(t *testing.T) {
	a := Of(3, X)
	b := Of(3, X)
	require.Equal(t, a, b)

	m := map[Property]int{a: 1}
	m[b]++
	assert.Len(t, m, 1)
	assert.Equal(t, 2, m[a])

	assert.NotEqual(t, a, Of(3, Y))
	assert.NotEqual(t, a, Of(4, X))
	assert.Equal(t, Of(3, DX), a.Delta())
	assert.Equal(t, "dx_3", a.Delta().Name())
}

func TestCompareOrder(t *testing.T) {
	want := []Property{
		Of(0, DX), Of(0, DY), Of(0, DH), Of(0, DW),
		Of(0, X), Of(0, Y), Of(0, W), Of(0, H),
		Of(1, DX),
	}
	s := NewSet()
	for i := len(want) - 1; i >= 0; i-- {
		s.Add(want[i])
	}
	assert.Equal(t, want, s.Sorted())
	assert.True(t, Less(Of(0, H), Of(1, DX)))
	assert.Equal(t, 0, Compare(Of(2, W), Of(2, W)))
}

func TestRegistryInterning(t *testing.T) {
	r := NewRegistry()
	h1 := r.Intern(Of(1, X))
	h2 := r.Intern(Of(2, X))
	h3 := r.Intern(Of(1, X))

	assert.Equal(t, h1, h3, "same pair must intern to one handle")
	assert.NotEqual(t, h1, h2)
	assert.Equal(t, 2, r.Len())
	assert.Equal(t, Of(2, X), r.Property(h2))

	_, ok := r.Lookup(Of(9, H))
	assert.False(t, ok)
	assert.Equal(t, 2, r.Len(), "Lookup must not intern")
	assert.Equal(t, []Property{Of(1, X), Of(2, X)}, r.All())
}

func TestSet(t *testing.T) {
	s := NewSet(Of(1, X), Of(2, DX))
	assert.True(t, s.Add(Of(3, DX)))
	assert.False(t, s.Add(Of(1, X)))
	assert.True(t, s.Has(Of(2, DX)))

	o := NewSet(Of(4, DX), Of(4, DW))
	s.AddAll(o)
	assert.Len(t, s, 5)
	assert.Equal(t, []Property{Of(2, DX), Of(3, DX), Of(4, DX)}, s.Filter(DX))
}

func TestValue(t *testing.T) {
	tr := box.NewTree()
	b := tr.New(1, 2, 3, 4)
	assert.Equal(t, 1.0, Value(b, X))
	assert.Equal(t, 2.0, Value(b, Y))
	assert.Equal(t, 3.0, Value(b, W))
	assert.Equal(t, 4.0, Value(b, H))
	assert.Zero(t, Value(b, DW))
}
