package constraint

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/depgraph"
	"github.com/matzehuels/pagen/pkg/property"
)

// Kind is the variant of a [Constraint].
type Kind int

const (
	KindAligned Kind = iota
	KindDisjoint
	KindContained
)

func (k Kind) String() string {
	switch k {
	case KindAligned:
		return "aligned"
	case KindDisjoint:
		return "disjoint"
	case KindContained:
		return "contained"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Axis selects the coordinate an Aligned constraint compares.
type Axis int

const (
	// AxisX compares left edges (boxes stacked in a column).
	AxisX Axis = iota
	// AxisY compares top edges (boxes laid out in a row).
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Attribute returns the absolute attribute the axis compares.
func (a Axis) Attribute() property.Attribute {
	if a == AxisY {
		return property.Y
	}
	return property.X
}

// Constraint is a geometric predicate over boxes.
type Constraint struct {
	kind    Kind
	axis    Axis
	boxes   []*box.Box
	verdict *bool
}

// Aligned returns a constraint requiring every box to share the coordinate
// on axis. Duplicate boxes are ignored.
func Aligned(axis Axis, boxes ...*box.Box) *Constraint {
	c := &Constraint{kind: KindAligned, axis: axis}
	for _, b := range boxes {
		c.Add(b)
	}
	return c
}

// Disjoint returns a constraint requiring a and b not to overlap.
func Disjoint(a, b *box.Box) *Constraint {
	return &Constraint{kind: KindDisjoint, boxes: []*box.Box{a, b}}
}

// Contained returns a constraint requiring child to lie inside parent.
func Contained(parent, child *box.Box) *Constraint {
	return &Constraint{kind: KindContained, boxes: []*box.Box{parent, child}}
}

// Add appends b to an Aligned constraint. It has no effect on other kinds,
// on nil boxes or when b is already present.
func (c *Constraint) Add(b *box.Box) *Constraint {
	if c.kind != KindAligned || b == nil || c.Involves(b.ID) {
		return c
	}
	c.boxes = append(c.boxes, b)
	return c
}

// Kind returns the variant of c.
func (c *Constraint) Kind() Kind { return c.kind }

// Axis returns the compared axis. It is only meaningful for Aligned.
func (c *Constraint) Axis() Axis { return c.axis }

// First returns the first box: the parent of a Contained constraint.
func (c *Constraint) First() *box.Box { return c.boxes[0] }

// Second returns the second box: the child of a Contained constraint.
func (c *Constraint) Second() *box.Box { return c.boxes[1] }

// Boxes returns the IDs of the boxes c references, in insertion order.
func (c *Constraint) Boxes() []box.ID {
	ids := make([]box.ID, len(c.boxes))
	for i, b := range c.boxes {
		ids[i] = b.ID
	}
	return ids
}

// Involves reports whether c references the box id.
func (c *Constraint) Involves(id box.ID) bool {
	return slices.ContainsFunc(c.boxes, func(b *box.Box) bool { return b != nil && b.ID == id })
}

// Valid reports whether c is meaningful: at least two boxes for Aligned,
// two distinct boxes otherwise.
func (c *Constraint) Valid() bool {
	switch c.kind {
	case KindAligned:
		return len(c.boxes) >= 2
	case KindDisjoint, KindContained:
		return len(c.boxes) == 2 && c.boxes[0] != nil && c.boxes[1] != nil &&
			c.boxes[0].ID != c.boxes[1].ID
	}
	return false
}

// Verdict reports whether c holds. The first call evaluates the current
// geometry; later calls return the cached result.
func (c *Constraint) Verdict() bool {
	if c.verdict == nil {
		v := c.evaluate()
		c.verdict = &v
	}
	return *c.verdict
}

// Evaluated reports whether the verdict has been computed.
func (c *Constraint) Evaluated() bool { return c.verdict != nil }

func (c *Constraint) evaluate() bool {
	switch c.kind {
	case KindAligned:
		if len(c.boxes) == 0 {
			return true
		}
		want := coordinate(c.boxes[0], c.axis)
		for _, b := range c.boxes[1:] {
			if coordinate(b, c.axis) != want {
				return false
			}
		}
		return true
	case KindDisjoint:
		return !c.boxes[0].Overlaps(c.boxes[1])
	case KindContained:
		return c.boxes[0].Contains(c.boxes[1])
	}
	panic(fmt.Sprintf("constraint: unknown kind %d", c.kind))
}

func coordinate(b *box.Box, a Axis) float64 {
	if a == AxisY {
		return b.Y
	}
	return b.X
}

// Key returns a string identifying c by kind and boxes. Two constraints
// with the same key describe the same predicate.
func (c *Constraint) Key() string {
	var sb strings.Builder
	sb.WriteString(c.kind.String())
	if c.kind == KindAligned {
		sb.WriteString("-" + c.axis.String())
	}
	ids := c.Boxes()
	if c.kind == KindAligned {
		slices.Sort(ids)
	}
	for i, id := range ids {
		if i == 0 {
			sb.WriteByte(':')
		} else {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(id)))
	}
	return sb.String()
}

func (c *Constraint) String() string {
	switch c.kind {
	case KindAligned:
		ids := make([]string, len(c.boxes))
		for i, b := range c.boxes {
			ids[i] = strconv.Itoa(int(b.ID))
		}
		return fmt.Sprintf("aligned(%s): %s", c.axis, strings.Join(ids, ","))
	case KindDisjoint:
		return fmt.Sprintf("disjoint: %d,%d", c.boxes[0].ID, c.boxes[1].ID)
	case KindContained:
		return fmt.Sprintf("%d within %d", c.boxes[1].ID, c.boxes[0].ID)
	}
	return c.kind.String()
}

// Properties returns the properties relevant to c.
//
// With changed nil, the result is every property c concerns. Otherwise it is
// the set of properties that must be reconsidered because changed may move.
// The result is empty when g shows changed directly influencing the other
// box of a binary constraint.
func (c *Constraint) Properties(g *depgraph.Graph, changed *property.Property) property.Set {
	switch c.kind {
	case KindAligned:
		return c.alignedProperties(g, changed)
	case KindDisjoint:
		return c.disjointProperties(g, changed)
	case KindContained:
		return c.containedProperties(g, changed)
	}
	panic(fmt.Sprintf("constraint: unknown kind %d", c.kind))
}

// alignedProperties skips the changed box and every box whose properties
// changed directly feeds: those move along with changed and stay aligned.
func (c *Constraint) alignedProperties(g *depgraph.Graph, changed *property.Property) property.Set {
	attr := c.axis.Attribute()
	out := property.NewSet()
	skip := make(map[box.ID]bool)
	if changed != nil {
		skip[changed.Box] = true
		for _, d := range g.Influences(*changed, false) {
			skip[d.From.Box] = true
		}
	}
	for _, b := range c.boxes {
		if !skip[b.ID] {
			out.Add(property.Of(b.ID, attr))
		}
	}
	return out
}

func (c *Constraint) allProperties() property.Set {
	out := property.NewSet()
	for _, b := range c.boxes {
		for _, a := range property.Attributes {
			out.Add(property.Of(b.ID, a))
		}
	}
	return out
}

// linked reports whether changed directly influences a property of other.
func linked(g *depgraph.Graph, changed property.Property, other box.ID) bool {
	for _, d := range g.Influences(changed, false) {
		if d.From.Box == other {
			return true
		}
	}
	return false
}

func (c *Constraint) disjointProperties(g *depgraph.Graph, changed *property.Property) property.Set {
	if changed == nil {
		return c.allProperties()
	}
	b1, b2 := c.boxes[0].ID, c.boxes[1].ID
	other := b2
	if changed.Box != b1 {
		other = b1
	}
	if linked(g, *changed, other) {
		return property.NewSet()
	}
	switch changed.Attr {
	case property.X, property.W:
		return property.NewSet(property.Of(other, property.X), property.Of(other, property.W))
	case property.Y, property.H:
		return property.NewSet(property.Of(other, property.Y), property.Of(other, property.H))
	}
	return c.allProperties()
}

func (c *Constraint) containedProperties(g *depgraph.Graph, changed *property.Property) property.Set {
	if changed == nil {
		return c.allProperties()
	}
	parent, child := c.boxes[0].ID, c.boxes[1].ID
	isParent := changed.Box == parent
	other := parent
	if isParent {
		other = child
	}
	if linked(g, *changed, other) {
		return property.NewSet()
	}
	switch changed.Attr {
	case property.X:
		if !isParent {
			return property.NewSet(property.Of(child, property.W))
		}
		return property.NewSet()
	case property.W:
		if isParent {
			return property.NewSet(property.Of(child, property.W))
		}
		return property.NewSet(property.Of(parent, property.X), property.Of(parent, property.W))
	case property.Y:
		if !isParent {
			return property.NewSet(property.Of(child, property.H))
		}
		return property.NewSet()
	case property.H:
		if isParent {
			return property.NewSet(property.Of(child, property.Y), property.Of(child, property.H))
		}
		return property.NewSet(property.Of(parent, property.H))
	}
	return c.allProperties()
}
