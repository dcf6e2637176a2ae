// Package num formats coordinates for the text-based renderers.
package num

import "strconv"

// Format writes v in its shortest round-trip decimal form, without an
// exponent: 2 stays "2", 10.5 stays "10.5".
func Format(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
