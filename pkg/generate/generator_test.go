package generate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagen/pkg/fault"
)

func TestGenerateIsDeterministic(t *testing.T) {
	ctx := context.Background()
	a, err := New(DefaultConfig(), 12).Generate(ctx)
	require.NoError(t, err)
	b, err := New(DefaultConfig(), 12).Generate(ctx)
	require.NoError(t, err)

	assert.Equal(t, a.Tree.Format(a.Root), b.Tree.Format(b.Root))
	assert.Equal(t, a.Graph.Edges(), b.Graph.Edges())
	assert.Equal(t, a.Faults, b.Faults)
	assert.NotEqual(t, a.ID, b.ID, "run IDs are unique even for equal seeds")
}

func TestGenerateWithoutFaultsSatisfiesEverything(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Misalign = 0
	cfg.MinDepth, cfg.MaxDepth = 2, 3

	for seed := uint64(0); seed < 10; seed++ {
		pg, err := New(cfg, seed).Generate(context.Background())
		require.NoError(t, err)

		assert.Zero(t, pg.Faults.Total())
		assert.Empty(t, pg.Tree.Altered(pg.Root))
		for _, c := range pg.AllConstraints() {
			assert.True(t, c.Verdict(), "seed %d: %s", seed, c)
		}
		m, err := fault.Reduce(context.Background(), pg.AllConstraints(), pg.Graph)
		require.NoError(t, err)
		assert.Zero(t, m.Variables())
	}
}

func TestGenerateCountsFaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Misalign = 0.3
	cfg.Overlap = 0.1
	cfg.Overflow = 0.1

	pg, err := New(cfg, 5).Generate(context.Background())
	require.NoError(t, err)

	altered := len(pg.Tree.Altered(pg.Root))
	assert.Equal(t, pg.Faults.Total(), altered, "each box carries at most one fault")
	assert.Equal(t, pg.Tree.Len(), pg.Tree.Size(pg.Root), "every box is reachable from the root")
}

func TestGenerateTreeShape(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Degree = 3
	pg, err := New(cfg, 1).Generate(context.Background())
	require.NoError(t, err)

	depth := pg.Tree.Depth(pg.Root)
	assert.LessOrEqual(t, depth, cfg.MaxDepth+2)
	for _, b := range pg.Tree.Boxes() {
		assert.Equal(t, cfg.Padding, b.Padding)
		if len(b.Children) == 0 && b.Width > 0 {
			assert.GreaterOrEqual(t, b.Width, cfg.MinWidth)
		}
	}
}

func TestGenerateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(DefaultConfig(), 1).Generate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
