package opl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/constraint"
	"github.com/matzehuels/pagen/pkg/page"
	"github.com/matzehuels/pagen/pkg/render/internal/num"
)

// Absolute returns the full model of pg: four variables per box and every
// constraint of the page.
func Absolute(pg *page.Page) ([]byte, Stats) {
	var buf bytes.Buffer
	writeHeader(&buf, pg)

	boxes := pg.Tree.Flatten(pg.Root)
	ids := make([]int, len(boxes))
	for i, b := range boxes {
		ids[i] = int(b.ID)
	}

	fmt.Fprintf(&buf, "int nb_rectangles=%d;\n", len(boxes))
	fmt.Fprintf(&buf, "{int} rectangles_id=%s;\n", intSet(ids))
	writeInitial(&buf, "ini_Height", boxes, func(b *box.Box) float64 { return b.Height })
	writeInitial(&buf, "ini_Width", boxes, func(b *box.Box) float64 { return b.Width })
	writeInitial(&buf, "ini_left", boxes, func(b *box.Box) float64 { return b.X })
	writeInitial(&buf, "ini_top", boxes, func(b *box.Box) float64 { return b.Y })
	for _, v := range []string{"Height", "Width", "left", "top"} {
		fmt.Fprintf(&buf, "dvar float %s[rectangles_id];\n", v)
	}

	buf.WriteString("execute{\n")
	buf.WriteString("cplex.tilim=1000;\n")
	buf.WriteString("cplex.epgap=0.2;\n")
	buf.WriteString("}\n")
	buf.WriteString("minimize sum(i in rectangles_id)(abs(top[i]-ini_top[i])+abs(left[i]-ini_left[i])+Height[i]-ini_Height[i]+Width[i]-ini_Width[i]);\n")

	buf.WriteString("subject to {\n")
	if len(boxes) > 0 {
		r := pg.Root
		fmt.Fprintf(&buf, "left[%d]==ini_left[%d];\n", r, r)
		fmt.Fprintf(&buf, "top[%d]==ini_top[%d];\n", r, r)
	}
	cs := pg.AllConstraints()
	for _, c := range cs {
		writeAbsolute(&buf, c)
	}
	buf.WriteString("forall(i in rectangles_id){\n")
	buf.WriteString("Width[i]>=ini_Width[i];\n")
	buf.WriteString("Height[i]>=ini_Height[i];\n")
	buf.WriteString("}\n")
	buf.WriteString("}\n")

	buf.WriteString("execute DISPLAY {\n")
	buf.WriteString("writeln(\"Top=\",top);\n")
	buf.WriteString("writeln(\"left=\",left);\n")
	buf.WriteString("writeln(\"height=\",Height);\n")
	buf.WriteString("writeln(\"width=\",Width);\n")
	buf.WriteString("}\n")

	return buf.Bytes(), Stats{Variables: 4 * len(boxes), Constraints: len(cs)}
}

func writeInitial(buf *bytes.Buffer, name string, boxes []*box.Box, value func(*box.Box) float64) {
	parts := make([]string, len(boxes))
	for i, b := range boxes {
		parts[i] = num.Format(value(b))
	}
	fmt.Fprintf(buf, "float %s[rectangles_id]=[%s];\n", name, strings.Join(parts, ","))
}

func writeAbsolute(buf *bytes.Buffer, c *constraint.Constraint) {
	switch c.Kind() {
	case constraint.KindAligned:
		v := "left"
		if c.Axis() == constraint.AxisY {
			v = "top"
		}
		ids := c.Boxes()
		for i := 1; i < len(ids); i++ {
			fmt.Fprintf(buf, "%s[%d]==%s[%d];\n", v, ids[i-1], v, ids[i])
		}
	case constraint.KindDisjoint:
		a, b := c.First().ID, c.Second().ID
		fmt.Fprintf(buf, "(left[%d]+Width[%d]<=left[%d]) || (left[%d]+Width[%d]<=left[%d]) || (top[%d]+Height[%d]<=top[%d]) || (top[%d]+Height[%d]<=top[%d]);\n",
			a, a, b, b, b, a, a, a, b, b, b, a)
	case constraint.KindContained:
		p, ch := c.First().ID, c.Second().ID
		fmt.Fprintf(buf, "left[%d]<=left[%d];\n", p, ch)
		fmt.Fprintf(buf, "top[%d]<=top[%d];\n", p, ch)
		fmt.Fprintf(buf, "left[%d]+Width[%d]<=left[%d]+Width[%d];\n", ch, ch, p, p)
		fmt.Fprintf(buf, "top[%d]+Height[%d]<=top[%d]+Height[%d];\n", ch, ch, p, p)
	}
}
