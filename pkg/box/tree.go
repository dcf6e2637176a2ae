package box

import (
	"fmt"
	"strings"
)

// Tree is an arena of boxes. The zero value is not usable; create trees
// with [NewTree].
type Tree struct {
	boxes []*Box
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// New creates a detached box with the given geometry and returns it.
// The returned pointer stays valid for the lifetime of the tree.
func (t *Tree) New(x, y, w, h float64) *Box {
	b := &Box{
		ID:     ID(len(t.boxes)),
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Parent: NoParent,
	}
	t.boxes = append(t.boxes, b)
	return b
}

// Box returns the box with the given ID, or nil if it does not exist.
func (t *Tree) Box(id ID) *Box {
	if id < 0 || int(id) >= len(t.boxes) {
		return nil
	}
	return t.boxes[id]
}

// Lookup is like [Tree.Box] but reports whether the box exists.
func (t *Tree) Lookup(id ID) (*Box, bool) {
	b := t.Box(id)
	return b, b != nil
}

// Len returns the number of boxes ever created in the tree.
func (t *Tree) Len() int { return len(t.boxes) }

// Boxes returns every box in creation order. The slice is a copy; the
// boxes are not.
func (t *Tree) Boxes() []*Box {
	out := make([]*Box, len(t.boxes))
	copy(out, t.boxes)
	return out
}

// Parent returns the parent of id, or nil for roots and unknown IDs.
func (t *Tree) Parent(id ID) *Box {
	b := t.Box(id)
	if b == nil || b.IsRoot() {
		return nil
	}
	return t.Box(b.Parent)
}

// Children returns the children of id in insertion order.
func (t *Tree) Children(id ID) []*Box {
	b := t.Box(id)
	if b == nil {
		return nil
	}
	out := make([]*Box, len(b.Children))
	for i, c := range b.Children {
		out[i] = t.boxes[c]
	}
	return out
}

// AddChild attaches child under parent. The parent grows, if needed, so that
// its width and height cover the child's right and bottom edges.
func (t *Tree) AddChild(parent, child ID) error {
	p, c := t.Box(parent), t.Box(child)
	if p == nil || c == nil {
		return ErrUnknownBox
	}
	if parent == child {
		return ErrSelfChild
	}
	if !c.IsRoot() {
		return ErrHasParent
	}
	c.Parent = parent
	p.Children = append(p.Children, child)
	p.Width = max(p.Width, max(0, c.Right()))
	p.Height = max(p.Height, max(0, c.Bottom()))
	return nil
}

// ShiftX moves a box and its whole subtree horizontally by s.
func (t *Tree) ShiftX(id ID, s float64) {
	t.Walk(id, func(b *Box, _ int) bool {
		b.X += s
		return true
	})
}

// ShiftY moves a box and its whole subtree vertically by s.
func (t *Tree) ShiftY(id ID, s float64) {
	t.Walk(id, func(b *Box, _ int) bool {
		b.Y += s
		return true
	})
}

// Walk visits the subtree rooted at id in preorder. fn receives each box and
// its depth relative to id; returning false skips that box's children.
func (t *Tree) Walk(id ID, fn func(b *Box, depth int) bool) {
	var visit func(id ID, depth int)
	visit = func(id ID, depth int) {
		b := t.Box(id)
		if b == nil || !fn(b, depth) {
			return
		}
		for _, c := range b.Children {
			visit(c, depth+1)
		}
	}
	visit(id, 0)
}

// Size returns the number of boxes in the subtree rooted at id.
func (t *Tree) Size(id ID) int {
	n := 0
	t.Walk(id, func(*Box, int) bool {
		n++
		return true
	})
	return n
}

// Depth returns the number of levels in the subtree rooted at id. A single
// box has depth 1; an unknown ID has depth 0.
func (t *Tree) Depth(id ID) int {
	d := 0
	t.Walk(id, func(_ *Box, depth int) bool {
		d = max(d, depth+1)
		return true
	})
	return d
}

// Flatten returns the subtree rooted at id in preorder.
func (t *Tree) Flatten(id ID) []*Box {
	var out []*Box
	t.Walk(id, func(b *Box, _ int) bool {
		out = append(out, b)
		return true
	})
	return out
}

// Altered returns the boxes of the subtree rooted at id that carry an
// injected fault.
func (t *Tree) Altered(id ID) []*Box {
	var out []*Box
	t.Walk(id, func(b *Box, _ int) bool {
		if b.Altered {
			out = append(out, b)
		}
		return true
	})
	return out
}

// Format renders the subtree rooted at id as an indented listing, one box
// per line.
func (t *Tree) Format(id ID) string {
	var sb strings.Builder
	t.Walk(id, func(b *Box, depth int) bool {
		fmt.Fprintf(&sb, "%sid: %d, x: %g, y: %g, w: %g, h: %g\n",
			strings.Repeat(" ", depth), b.ID, b.X, b.Y, b.Width, b.Height)
		return true
	})
	return sb.String()
}
