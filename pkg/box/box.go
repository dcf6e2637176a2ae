package box

import "errors"

var (
	// ErrUnknownBox is returned when an ID does not belong to the tree.
	ErrUnknownBox = errors.New("unknown box")

	// ErrSelfChild is returned by [Tree.AddChild] when a box is added to itself.
	ErrSelfChild = errors.New("box cannot be its own child")

	// ErrHasParent is returned by [Tree.AddChild] when the child is already
	// attached somewhere else. Trees are write-once.
	ErrHasParent = errors.New("box already has a parent")
)

// ID identifies a box inside its [Tree]. IDs are dense, start at zero and
// follow creation order.
type ID int

// NoParent is the Parent value of a root box.
const NoParent ID = -1

// Box is a positioned rectangle in the page tree.
//
// X and Y are the absolute coordinates of the top-left corner. Padding
// applies to all four inner sides. Parent is a non-owning index into the
// tree arena; Children are kept in insertion order.
type Box struct {
	ID       ID
	X        float64
	Y        float64
	Width    float64
	Height   float64
	Padding  float64
	Altered  bool
	Parent   ID
	Children []ID
}

// Alter marks the box as having received an injected fault.
func (b *Box) Alter() { b.Altered = true }

// Right returns the x coordinate of the right edge.
func (b *Box) Right() float64 { return b.X + b.Width }

// Bottom returns the y coordinate of the bottom edge.
func (b *Box) Bottom() float64 { return b.Y + b.Height }

// IsRoot reports whether the box has no parent.
func (b *Box) IsRoot() bool { return b.Parent == NoParent }

// Overlaps reports whether the rectangles of b and o intersect with a
// non-empty area. Touching edges do not count as overlap.
func (b *Box) Overlaps(o *Box) bool {
	return !(b.Bottom() <= o.Y || o.Bottom() <= b.Y || b.Right() <= o.X || o.Right() <= b.X)
}

// Contains reports whether o lies entirely within b, edges included.
func (b *Box) Contains(o *Box) bool {
	return b.Y <= o.Y && b.Bottom() >= o.Bottom() && b.X <= o.X && b.Right() >= o.Right()
}
