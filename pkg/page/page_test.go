package page

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagen/pkg/constraint"
	"github.com/matzehuels/pagen/pkg/property"
)

func TestNewPagesAreIndependent(t *testing.T) {
	a, b := New(1), New(1)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	a.Tree.New(0, 0, 1, 1)
	assert.Equal(t, 0, b.Tree.Len())
	assert.Nil(t, a.RootBox(), "root is unset until the generator picks one")
}

func TestDependInternsAndRecords(t *testing.T) {
	p := New(7)
	parent := p.Tree.New(0, 0, 10, 10)
	child := p.Tree.New(2, 2, 4, 4)

	p.Depend(child, property.X, parent, property.X)
	p.Depend(child, property.X, parent, property.X)

	assert.Equal(t, 1, p.Graph.EdgeCount())
	assert.Equal(t, 2, p.Registry.Len())
	h, ok := p.Registry.Lookup(property.Of(parent.ID, property.X))
	require.True(t, ok)
	assert.Equal(t, h, p.Handle(property.Of(parent.ID, property.X)))
}

func TestAllConstraints(t *testing.T) {
	p := New(0)
	root := p.Tree.New(0, 0, 0, 0)
	a := p.Tree.New(2, 2, 5, 5)
	b := p.Tree.New(9, 2, 5, 5)
	require.NoError(t, p.Tree.AddChild(root.ID, a.ID))
	require.NoError(t, p.Tree.AddChild(root.ID, b.ID))
	p.Root = root.ID

	p.Layout.Add(constraint.Aligned(constraint.AxisY, a, b))
	p.DeriveStructure()

	all := p.AllConstraints()
	require.Len(t, all, 4)
	assert.Equal(t, constraint.KindAligned, all[0].Kind())
	assert.Equal(t, 2, p.Structural.CountKind(constraint.KindContained))
	assert.Equal(t, 1, p.Structural.CountKind(constraint.KindDisjoint))
}
