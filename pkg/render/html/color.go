package html

import (
	"fmt"

	"github.com/matzehuels/pagen/pkg/generate"
)

// colorSeedOffset keeps box colors independent from the generator's own
// random streams, which use offsets 0 through 13 except this one.
const colorSeedOffset = 9

// ColorPicker produces light background colors, one per call.
type ColorPicker struct {
	channel generate.Picker[int]
}

// NewColorPicker returns a picker seeded from a page seed.
func NewColorPicker(seed uint64) *ColorPicker {
	return &ColorPicker{channel: generate.NewIntRange(128, 255, seed+colorSeedOffset)}
}

// Pick returns a color in #rrggbb form with every channel in [128, 255].
func (c *ColorPicker) Pick() string {
	r, g, b := c.channel.Pick(), c.channel.Pick(), c.channel.Pick()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
