// Package text renders a page as plain coordinates.
//
// Every box of the tree produces one line, in preorder:
//
//	x_0=0,y_0=0,w_0=40,h_0=42
//	x_1=2,y_1=2,w_1=10,h_1=8
//
// Values use the shortest decimal form that round-trips.
package text

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/render/internal/num"
)

// Render returns the coordinate listing of the subtree rooted at root.
func Render(t *box.Tree, root box.ID) []byte {
	var buf bytes.Buffer
	t.Walk(root, func(b *box.Box, _ int) bool {
		fmt.Fprintf(&buf, "x_%d=%s,y_%d=%s,w_%d=%s,h_%d=%s\n",
			b.ID, num.Format(b.X), b.ID, num.Format(b.Y),
			b.ID, num.Format(b.Width), b.ID, num.Format(b.Height))
		return true
	})
	return buf.Bytes()
}
