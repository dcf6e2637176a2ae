package generate

import (
	"context"

	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/page"
)

// Config controls the shape of generated pages and the faults injected into
// them.
type Config struct {
	MinDepth, MaxDepth int
	// Degree is the mean of the Poisson distribution of child counts.
	Degree float64

	MinWidth, MaxWidth   float64
	MinHeight, MaxHeight float64

	// MaxRowSize and MaxColumnSize bound the number of children per line in
	// wrapping flows. The actual size is drawn uniformly from [0, max].
	MaxRowSize    int
	MaxColumnSize int

	Padding float64
	Spacing float64

	Misalign float64
	Overlap  float64
	Overflow float64
	// MinShift and MaxShift bound the displacement of every injected fault.
	MinShift, MaxShift int
}

// DefaultConfig returns the default generation parameters.
func DefaultConfig() Config {
	return Config{
		MinDepth:      4,
		MaxDepth:      5,
		Degree:        2.2,
		MinWidth:      5,
		MaxWidth:      20,
		MinHeight:     5,
		MaxHeight:     10,
		MaxRowSize:    10,
		MaxColumnSize: 10,
		Padding:       2,
		Spacing:       DefaultSpacing,
		Misalign:      0.1,
		MinShift:      2,
		MaxShift:      10,
	}
}

// Layout choice weights.
const (
	weightSingleRow = 0.2
	weightRows      = 0.4
	weightColumns   = 0.4
)

// Generator builds random pages. A Generator is single-use: its flows
// accumulate constraints and counters across [Generator.Generate] calls, so
// create one per page.
type Generator struct {
	cfg  Config
	seed uint64

	depth  Picker[int]
	degree Picker[int]
	width  Picker[float64]
	height Picker[float64]
	layout Picker[LayoutManager]

	singleRow, rows, columns *Flow
}

// New returns a generator whose random sources all derive from seed.
func New(cfg Config, seed uint64) *Generator {
	g := &Generator{
		cfg:    cfg,
		seed:   seed,
		depth:  NewIntRange(cfg.MinDepth, cfg.MaxDepth, seed),
		degree: NewPoisson(cfg.Degree, seed+1),
		width:  NewFloatRange(cfg.MinWidth, cfg.MaxWidth, seed+3),
		height: NewFloatRange(cfg.MinHeight, cfg.MaxHeight, seed+4),
	}

	misalign := NewBernoulli(cfg.Misalign, seed+8)
	shift := NewIntRange(cfg.MinShift, cfg.MaxShift, seed+7)
	overlap := NewBernoulli(cfg.Overlap, seed+10)
	overlapAmount := NewIntRange(cfg.MinShift, cfg.MaxShift, seed+11)
	overflow := NewBernoulli(cfg.Overflow, seed+12)
	overflowAmount := NewIntRange(cfg.MinShift, cfg.MaxShift, seed+13)

	g.singleRow = HorizontalFlow(nil)
	g.rows = HorizontalFlow(NewIntRange(0, cfg.MaxRowSize, seed+5))
	g.columns = VerticalFlow(NewIntRange(0, cfg.MaxColumnSize, seed+6))
	for _, f := range g.flows() {
		f.Spacing = cfg.Spacing
		f.SetAlignmentFault(misalign, shift)
		f.SetOverlapFault(overlap, overlapAmount)
		f.SetOverflowFault(overflow, overflowAmount)
	}

	g.layout = NewWeighted[LayoutManager](NewFloatRange(0, 1, seed+2)).
		Add(g.singleRow, weightSingleRow).
		Add(g.rows, weightRows).
		Add(g.columns, weightColumns)
	return g
}

func (g *Generator) flows() []*Flow {
	return []*Flow{g.singleRow, g.rows, g.columns}
}

// Generate builds a page: a random tree laid out by the flows, with the
// alignment constraints they emitted and the structural constraints of the
// finished tree. It returns ctx.Err() if ctx is done before the tree is
// complete.
func (g *Generator) Generate(ctx context.Context) (*page.Page, error) {
	pg := page.New(g.seed)
	root, err := g.build(ctx, pg, g.depth)
	if err != nil {
		return nil, err
	}
	pg.Root = root.ID

	for _, f := range g.flows() {
		pg.Layout.Union(f.Constraints())
		pg.Faults.Overlaps += f.Overlaps()
		pg.Faults.Overflows += f.Overflows()
	}
	pg.Faults.HorizontalMisalignments = g.singleRow.Misalignments() + g.rows.Misalignments()
	pg.Faults.VerticalMisalignments = g.columns.Misalignments()
	pg.DeriveStructure()
	return pg, nil
}

// build creates the children of a new box before the box itself, then lets
// a randomly chosen layout arrange them.
func (g *Generator) build(ctx context.Context, pg *page.Page, depth Picker[int]) (*box.Box, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	n := g.degree.Pick()
	children := make([]*box.Box, 0, n)
	for range n {
		var b *box.Box
		if d := depth.Pick(); d <= 0 {
			b = pg.Tree.New(0, 0, g.width.Pick(), g.height.Pick())
			b.Padding = g.cfg.Padding
		} else {
			var err error
			if b, err = g.build(ctx, pg, Constant[int]{Value: d - 1}); err != nil {
				return nil, err
			}
		}
		children = append(children, b)
	}
	parent := pg.Tree.New(0, 0, 0, 0)
	parent.Padding = g.cfg.Padding
	g.layout.Pick().Arrange(pg, parent, children)
	return parent, nil
}
