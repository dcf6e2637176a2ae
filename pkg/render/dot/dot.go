// Package dot renders pages as Graphviz DOT and SVG.
//
// [Tree] draws the box hierarchy: one circle per box, one edge from each
// parent to each child, altered boxes filled black.
//
// [Dependencies] draws the influence graph recorded while the page was laid
// out. Each node is one box property, labelled like x<sub>3</sub>. Nodes in
// the faulty set get a saturated per-attribute color; the others are pale.
// Edges point from the influencing property to the influenced one and are
// greyed out unless both ends are faulty. Edges between a box and its parent
// are drawn as double lines.
//
// Both return DOT source that [RenderSVG] lays out with an embedded Graphviz
// build, so no external tools are needed.
package dot

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/page"
	"github.com/matzehuels/pagen/pkg/property"
)

// Tree converts the subtree rooted at root to DOT.
func Tree(t *box.Tree, root box.ID) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  node [shape=\"circle\",style=\"filled\",fillcolor=\"white\"];\n")
	buf.WriteString("\n")

	t.Walk(root, func(b *box.Box, _ int) bool {
		if b.Altered {
			fmt.Fprintf(&buf, "  %d [fillcolor=\"black\",fontcolor=\"white\"];\n", b.ID)
		}
		return true
	})
	t.Walk(root, func(b *box.Box, _ int) bool {
		for _, c := range b.Children {
			fmt.Fprintf(&buf, "  %d -> %d;\n", b.ID, c)
		}
		return true
	})

	buf.WriteString("}\n")
	return buf.String()
}

type palette struct {
	faulty, normal string
}

var colors = map[property.Attribute]palette{
	property.X: {"cyan3", "lightcyan1"},
	property.Y: {"deeppink", "lightpink"},
	property.H: {"darkorchid", "mediumorchid1"},
	property.W: {"dodgerblue3", "lightskyblue3"},
}

// Dependencies converts the dependency graph of pg to DOT, highlighting the
// properties in faulty.
func Dependencies(pg *page.Page, faulty property.Set) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  node [shape=\"circle\",style=\"filled\",height=0.4,width=0.4,fixedsize=\"true\"];\n")
	buf.WriteString("\n")

	for _, p := range pg.Graph.Nodes() {
		pal := colors[p.Attr.Absolute()]
		fill, outline := pal.normal, "gainsboro"
		if faulty.Has(p) {
			fill, outline = pal.faulty, "black"
		}
		fmt.Fprintf(&buf, "  %s [fillcolor=%q,label=<%s<sub>%d</sub>>,color=%q];\n",
			nodeID(pg, p), fill, p.Attr, p.Box, outline)
	}

	buf.WriteString("\n")
	for _, d := range pg.Graph.Edges() {
		hot := faulty.Has(d.From) && faulty.Has(d.To)
		color := "gainsboro"
		if hot {
			color = "black"
		}
		if related(pg.Tree, d.From.Box, d.To.Box) {
			color = color + ":white:" + color
		}
		if color == "black" {
			fmt.Fprintf(&buf, "  %s -> %s;\n", nodeID(pg, d.To), nodeID(pg, d.From))
			continue
		}
		fmt.Fprintf(&buf, "  %s -> %s [color=%q];\n", nodeID(pg, d.To), nodeID(pg, d.From), color)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(pg *page.Page, p property.Property) string {
	return fmt.Sprintf("p%d", pg.Handle(p))
}

// related reports whether a and b are parent and child, in either order.
func related(t *box.Tree, a, b box.ID) bool {
	if pa := t.Box(a); pa != nil && pa.Parent == b {
		return true
	}
	pb := t.Box(b)
	return pb != nil && pb.Parent == a
}
