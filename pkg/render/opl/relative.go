package opl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/constraint"
	"github.com/matzehuels/pagen/pkg/fault"
	"github.com/matzehuels/pagen/pkg/page"
	"github.com/matzehuels/pagen/pkg/property"
	"github.com/matzehuels/pagen/pkg/render/internal/num"
)

var deltaArrays = map[property.Attribute]string{
	property.DX: "xdot",
	property.DY: "ydot",
	property.DW: "wdot",
	property.DH: "hdot",
}

// objectiveOrder is the order in which delta sums appear in the objective.
var objectiveOrder = []property.Attribute{property.DX, property.DY, property.DH, property.DW}

// Relative returns the closure-reduced model of pg described by m.
func Relative(pg *page.Page, m *fault.Model) ([]byte, Stats) {
	var buf bytes.Buffer
	writeHeader(&buf, pg,
		"Relative modeling",
		fmt.Sprintf("Faulty properties: %d", len(m.Faulty)))

	for _, a := range fault.DeltaAttributes {
		name := deltaArrays[a]
		ds := m.Deltas(a)
		ids := make([]int, len(ds))
		for i, d := range ds {
			ids[i] = int(d.Box)
		}
		fmt.Fprintf(&buf, "{int} %s_id=%s;\n", name, intSet(ids))
		fmt.Fprintf(&buf, "dvar float %s[%s_id];\n", name, name)
	}

	sums := make([]string, len(objectiveOrder))
	for i, a := range objectiveOrder {
		name := deltaArrays[a]
		sums[i] = fmt.Sprintf("sum(i in %s_id)(abs(%s[i]))", name, name)
	}
	fmt.Fprintf(&buf, "minimize %s;\n", strings.Join(sums, "+"))

	buf.WriteString("subject to {\n")
	cs := m.Constraints.All()
	for _, c := range cs {
		writeRelative(&buf, pg.Tree, m, c)
	}
	buf.WriteString("}\n")
	buf.WriteString("execute DISPLAY {\n")
	for _, a := range fault.DeltaAttributes {
		fmt.Fprintf(&buf, "writeln(\"%s=\",%s);\n", deltaArrays[a], deltaArrays[a])
	}
	buf.WriteString("}\n")

	return buf.Bytes(), Stats{Variables: m.Variables(), Constraints: len(cs)}
}

// term writes attribute a of b as its generated value plus the deltas
// that may shift it, e.g. (12+xdot[1]+xdot[4]).
func term(m *fault.Model, b *box.Box, a property.Attribute) string {
	v := num.Format(property.Value(b, a))
	ds := m.Terms(property.Of(b.ID, a))
	if len(ds) == 0 {
		return v
	}
	var sb strings.Builder
	sb.WriteString("(")
	sb.WriteString(v)
	for _, d := range ds {
		fmt.Fprintf(&sb, "+%s[%d]", deltaArrays[d.Attr], d.Box)
	}
	sb.WriteString(")")
	return sb.String()
}

func writeRelative(buf *bytes.Buffer, t *box.Tree, m *fault.Model, c *constraint.Constraint) {
	switch c.Kind() {
	case constraint.KindAligned:
		a := c.Axis().Attribute()
		ids := c.Boxes()
		for i := 1; i < len(ids); i++ {
			fmt.Fprintf(buf, "%s==%s;\n", term(m, t.Box(ids[i-1]), a), term(m, t.Box(ids[i]), a))
		}
	case constraint.KindDisjoint:
		a, b := c.First(), c.Second()
		x := func(b *box.Box) string { return term(m, b, property.X) }
		y := func(b *box.Box) string { return term(m, b, property.Y) }
		w := func(b *box.Box) string { return term(m, b, property.W) }
		h := func(b *box.Box) string { return term(m, b, property.H) }
		fmt.Fprintf(buf, "(%s+%s<=%s) || (%s+%s<=%s) || (%s+%s<=%s) || (%s+%s<=%s);\n",
			x(a), w(a), x(b),
			x(b), w(b), x(a),
			y(a), h(a), y(b),
			y(b), h(b), y(a))
	case constraint.KindContained:
		p, ch := c.First(), c.Second()
		fmt.Fprintf(buf, "%s<=%s;\n", term(m, p, property.X), term(m, ch, property.X))
		fmt.Fprintf(buf, "%s<=%s;\n", term(m, p, property.Y), term(m, ch, property.Y))
		fmt.Fprintf(buf, "%s+%s<=%s+%s;\n",
			term(m, ch, property.X), term(m, ch, property.W), term(m, p, property.X), term(m, p, property.W))
		fmt.Fprintf(buf, "%s+%s<=%s+%s;\n",
			term(m, ch, property.Y), term(m, ch, property.H), term(m, p, property.Y), term(m, p, property.H))
	}
}
