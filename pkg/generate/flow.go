package generate

import (
	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/constraint"
	"github.com/matzehuels/pagen/pkg/page"
	"github.com/matzehuels/pagen/pkg/property"
)

// LayoutManager positions the children of a box and records what it did.
type LayoutManager interface {
	// Arrange attaches children to parent, positions them and sizes parent
	// to fit. Influence edges are recorded in pg's dependency graph.
	Arrange(pg *page.Page, parent *box.Box, children []*box.Box)
	// Constraints returns the alignment constraints emitted so far.
	Constraints() *constraint.Set
}

// Direction is the axis along which a [Flow] places children.
type Direction int

const (
	// Horizontal places children left to right and wraps into rows.
	Horizontal Direction = iota
	// Vertical places children top to bottom and wraps into columns.
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// axes returns the position and size attributes along the flow (main) and
// across it (cross).
func (d Direction) axes() (mainPos, mainSize, crossPos, crossSize property.Attribute) {
	if d == Vertical {
		return property.Y, property.H, property.X, property.W
	}
	return property.X, property.W, property.Y, property.H
}

// DefaultSpacing is the gap left between consecutive children.
const DefaultSpacing = 2

// Flow is a flow layout. Every line of children (a row for horizontal flows,
// a column for vertical ones) is expected to be aligned across the flow:
// rows share their top edge, columns share their left edge.
//
// Faults are injected while placing:
//   - misalignment shifts a child across the flow by Shift
//   - overlap grows a child along the flow so it runs into its successor
//   - overflow pushes the first child out of the parent along the flow
type Flow struct {
	Direction Direction
	// MaxElements is the number of children per line; zero never wraps.
	MaxElements Picker[int]
	Spacing     float64

	Misalign       Picker[bool]
	Shift          Picker[int]
	Overlap        Picker[bool]
	OverlapAmount  Picker[int]
	Overflow       Picker[bool]
	OverflowAmount Picker[int]

	constraints *constraint.Set
	misaligned  int
	overlaps    int
	overflows   int
}

// HorizontalFlow returns a fault-free horizontal flow.
func HorizontalFlow(maxElements Picker[int]) *Flow {
	return newFlow(Horizontal, maxElements)
}

// VerticalFlow returns a fault-free vertical flow.
func VerticalFlow(maxElements Picker[int]) *Flow {
	return newFlow(Vertical, maxElements)
}

func newFlow(d Direction, maxElements Picker[int]) *Flow {
	if maxElements == nil {
		maxElements = Constant[int]{}
	}
	return &Flow{
		Direction:      d,
		MaxElements:    maxElements,
		Spacing:        DefaultSpacing,
		Misalign:       Constant[bool]{},
		Shift:          Constant[int]{},
		Overlap:        Constant[bool]{},
		OverlapAmount:  Constant[int]{},
		Overflow:       Constant[bool]{},
		OverflowAmount: Constant[int]{},
		constraints:    constraint.NewSet(),
	}
}

// SetAlignmentFault enables misalignment faults.
func (f *Flow) SetAlignmentFault(toss Picker[bool], shift Picker[int]) {
	f.Misalign, f.Shift = toss, shift
}

// SetOverlapFault enables overlap faults.
func (f *Flow) SetOverlapFault(toss Picker[bool], amount Picker[int]) {
	f.Overlap, f.OverlapAmount = toss, amount
}

// SetOverflowFault enables overflow faults.
func (f *Flow) SetOverflowFault(toss Picker[bool], amount Picker[int]) {
	f.Overflow, f.OverflowAmount = toss, amount
}

// Constraints implements [LayoutManager].
func (f *Flow) Constraints() *constraint.Set { return f.constraints }

// Misalignments returns the number of misalignment faults injected.
func (f *Flow) Misalignments() int { return f.misaligned }

// Overlaps returns the number of overlap faults injected.
func (f *Flow) Overlaps() int { return f.overlaps }

// Overflows returns the number of overflow faults injected.
func (f *Flow) Overflows() int { return f.overflows }

func (f *Flow) alignAxis() constraint.Axis {
	if f.Direction == Vertical {
		return constraint.AxisX
	}
	return constraint.AxisY
}

func (f *Flow) shift(t *box.Tree, b *box.Box, a property.Attribute, s float64) {
	if a == property.X {
		t.ShiftX(b.ID, s)
	} else {
		t.ShiftY(b.ID, s)
	}
}

func grow(b *box.Box, a property.Attribute, s float64) {
	if a == property.W {
		b.Width += s
	} else {
		b.Height += s
	}
}

func resize(b *box.Box, a property.Attribute, v float64) {
	if a == property.W {
		b.Width = v
	} else {
		b.Height = v
	}
}

// Arrange implements [LayoutManager]. Children are expected to be detached
// and positioned at the origin, with their subtrees laid out relative to it.
func (f *Flow) Arrange(pg *page.Page, parent *box.Box, children []*box.Box) {
	if len(children) == 0 {
		return
	}
	t := pg.Tree
	mainPos, mainSize, crossPos, crossSize := f.Direction.axes()
	maxElements := f.MaxElements.Pick()
	pad := parent.Padding

	along, across := pad, pad
	boundMain, boundCross := 0.0, 0.0
	n := 0
	line := constraint.Aligned(f.alignAxis())
	var prev, thickest, prevThickest *box.Box

	for i, b := range children {
		_ = t.AddChild(parent.ID, b.ID)
		altered := false
		offset := 0.0
		if f.Misalign.Pick() {
			f.misaligned++
			offset = float64(f.Shift.Pick())
			b.Alter()
			altered = true
		}
		f.shift(t, b, mainPos, along)
		f.shift(t, b, crossPos, across+offset)

		if prev == nil {
			pg.Depend(b, mainPos, parent, mainPos)
		} else {
			pg.Depend(b, mainPos, prev, mainPos)
			pg.Depend(b, mainPos, prev, mainSize)
		}
		if prevThickest == nil {
			pg.Depend(b, crossPos, parent, crossPos)
		} else {
			pg.Depend(b, crossPos, prevThickest, crossPos)
			pg.Depend(b, crossPos, prevThickest, crossSize)
		}
		pg.Depend(parent, mainSize, b, mainPos)
		pg.Depend(parent, mainSize, b, mainSize)
		pg.Depend(parent, crossSize, b, crossPos)
		pg.Depend(parent, crossSize, b, crossSize)

		size := property.Value(b, mainSize)
		extent := property.Value(b, crossSize)
		boundMain = max(boundMain, along+size)
		along += size + f.Spacing
		boundCross = max(boundCross, across+extent+offset)
		if thickest == nil || extent > property.Value(thickest, crossSize) {
			thickest = b
		}
		n++
		line.Add(b)

		// Every child but the last draws an overlap toss, altered or not.
		if i < len(children)-1 {
			if overlap := f.Overlap.Pick(); overlap && !altered {
				f.overlaps++
				grow(b, mainSize, float64(f.OverlapAmount.Pick())+f.Spacing)
				b.Alter()
			}
		}
		prev = b

		if maxElements > 0 && n == maxElements {
			n = 0
			along = pad
			across += property.Value(thickest, crossSize) + f.Spacing
			f.constraints.Add(line)
			line = constraint.Aligned(f.alignAxis())
			prev, prevThickest, thickest = nil, thickest, nil
		}
	}
	f.constraints.Add(line)

	resize(parent, mainSize, boundMain+pad)
	resize(parent, crossSize, boundCross+pad)

	if first := children[0]; !first.Altered && f.Overflow.Pick() {
		f.overflows++
		f.shift(t, first, mainPos, -float64(f.OverflowAmount.Pick()))
		first.Alter()
	}
}
