// Package html renders a page as a standalone HTML document.
//
// Every box becomes an absolutely positioned div with a random light
// background. Boxes that received an injected fault carry the "altered"
// class, which paints them black with a dashed red outline.
//
// Two layouts are available. The nested document mirrors the box tree:
// child divs live inside their parent and use coordinates relative to it,
// so the browser's own containment is visible. The flat document emits
// every box at the top level with absolute page coordinates.
package html

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/render/internal/num"
)

// Options configures HTML rendering.
type Options struct {
	// Flat emits every box at the top level with absolute coordinates.
	Flat bool
	// Seed drives the background colors. Use the page seed to get the same
	// colors for the same page.
	Seed uint64
}

const header = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
.altered{background-color:black !important; outline: red dashed 1px}
.box{position:absolute}
.box:hover{opacity:80%; outline: solid 1px}
</style>
</head>
<body>
<div style="position:absolute;left:0px;top:0px">
`

const footer = `</div>
</body>
</html>
`

// Render returns the HTML document for the subtree rooted at root.
func Render(t *box.Tree, root box.ID, opts Options) []byte {
	r := &renderer{tree: t, colors: NewColorPicker(opts.Seed)}
	r.buf.WriteString(header)
	if opts.Flat {
		t.Walk(root, func(b *box.Box, _ int) bool {
			r.open(b, b.X, b.Y, flatTitle(b))
			r.buf.WriteString("</div>\n")
			return true
		})
	} else {
		r.nested(root)
	}
	r.buf.WriteString(footer)
	return r.buf.Bytes()
}

type renderer struct {
	tree   *box.Tree
	colors *ColorPicker
	buf    bytes.Buffer
}

func (r *renderer) nested(id box.ID) {
	b := r.tree.Box(id)
	if b == nil {
		return
	}
	x, y := b.X, b.Y
	if p := r.tree.Parent(id); p != nil {
		x, y = b.X-p.X, b.Y-p.Y
	}
	r.open(b, x, y, nestedTitle(b))
	for _, c := range b.Children {
		r.nested(c)
	}
	r.buf.WriteString("</div>\n")
}

func (r *renderer) open(b *box.Box, x, y float64, title string) {
	class := "box"
	if b.Altered {
		class += " altered"
	}
	fmt.Fprintf(&r.buf, `<div id="%d" class="%s"`, b.ID, class)
	if title != "" {
		fmt.Fprintf(&r.buf, ` title="%s"`, title)
	}
	fmt.Fprintf(&r.buf, ` style="left:%spx;top:%spx;width:%spx;height:%spx;background-color:%s">`+"\n",
		num.Format(x), num.Format(y), num.Format(b.Width), num.Format(b.Height), r.colors.Pick())
}

func flatTitle(b *box.Box) string {
	if b.Altered {
		return "Altered"
	}
	return ""
}

func nestedTitle(b *box.Box) string {
	if b.Altered {
		return fmt.Sprintf("%d [Altered]", b.ID)
	}
	return fmt.Sprint(b.ID)
}
