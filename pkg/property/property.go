package property

import (
	"cmp"
	"fmt"

	"github.com/matzehuels/pagen/pkg/box"
)

// Attribute selects one geometric property of a box.
//
// Declaration order is the sort order used by [Compare].
type Attribute int

const (
	DX Attribute = iota
	DY
	DH
	DW
	X
	Y
	W
	H
)

var attributeNames = [...]string{
	DX: "dx",
	DY: "dy",
	DH: "dh",
	DW: "dw",
	X:  "x",
	Y:  "y",
	W:  "w",
	H:  "h",
}

// Attributes lists the absolute attributes in canonical order.
var Attributes = []Attribute{X, Y, W, H}

func (a Attribute) String() string {
	if a < DX || a > H {
		return fmt.Sprintf("attr(%d)", int(a))
	}
	return attributeNames[a]
}

// IsDelta reports whether a is one of DX, DY, DW, DH.
func (a Attribute) IsDelta() bool { return a >= DX && a <= DW }

// Delta maps an absolute attribute to its delta. Delta attributes map to
// themselves.
func (a Attribute) Delta() Attribute {
	switch a {
	case X:
		return DX
	case Y:
		return DY
	case W:
		return DW
	case H:
		return DH
	}
	return a
}

// Absolute is the inverse of [Attribute.Delta].
func (a Attribute) Absolute() Attribute {
	switch a {
	case DX:
		return X
	case DY:
		return Y
	case DW:
		return W
	case DH:
		return H
	}
	return a
}

// Property identifies one attribute of one box.
type Property struct {
	Box  box.ID
	Attr Attribute
}

// Of returns the property a of box b.
func Of(b box.ID, a Attribute) Property {
	return Property{Box: b, Attr: a}
}

// Delta returns the delta counterpart of p.
func (p Property) Delta() Property { return Property{Box: p.Box, Attr: p.Attr.Delta()} }

// Absolute returns the absolute counterpart of p.
func (p Property) Absolute() Property { return Property{Box: p.Box, Attr: p.Attr.Absolute()} }

// Name returns the variable-style name of p, e.g. "dx_4".
func (p Property) Name() string {
	return fmt.Sprintf("%s_%d", p.Attr, p.Box)
}

func (p Property) String() string {
	return fmt.Sprintf("%s(%d)", p.Attr, p.Box)
}

// Compare orders properties by box ID, then by attribute.
func Compare(a, b Property) int {
	if c := cmp.Compare(a.Box, b.Box); c != 0 {
		return c
	}
	return cmp.Compare(a.Attr, b.Attr)
}

// Less reports whether a sorts before b.
func Less(a, b Property) bool { return Compare(a, b) < 0 }

// Value returns the generated value of attribute a on b. Delta attributes
// have no generated value and yield zero.
func Value(b *box.Box, a Attribute) float64 {
	switch a {
	case X:
		return b.X
	case Y:
		return b.Y
	case W:
		return b.Width
	case H:
		return b.Height
	}
	return 0
}
