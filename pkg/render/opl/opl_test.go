package opl

import (
	"context"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagen/pkg/box"
	"github.com/matzehuels/pagen/pkg/constraint"
	"github.com/matzehuels/pagen/pkg/fault"
	"github.com/matzehuels/pagen/pkg/page"
	"github.com/matzehuels/pagen/pkg/property"
)

// samplePage lays out two boxes in a row whose top edges are meant to match
// but are one unit apart.
func samplePage(t *testing.T, misaligned bool) *page.Page {
	t.Helper()
	pg := page.New(5)
	root := pg.Tree.New(0, 0, 40, 20)
	a := pg.Tree.New(2, 2, 10, 10)
	top := 2.0
	if misaligned {
		top = 3
	}
	b := pg.Tree.New(14, top, 10, 10)
	for _, c := range []box.ID{a.ID, b.ID} {
		require.NoError(t, pg.Tree.AddChild(root.ID, c))
	}
	pg.Root = root.ID

	pg.Depend(a, property.X, root, property.X)
	pg.Depend(a, property.Y, root, property.Y)
	pg.Depend(b, property.X, a, property.X)
	pg.Depend(b, property.X, a, property.W)
	pg.Depend(b, property.Y, root, property.Y)
	pg.Depend(root, property.W, b, property.X)
	pg.Depend(root, property.W, b, property.W)

	pg.Layout.Add(constraint.Aligned(constraint.AxisY, a, b))
	pg.DeriveStructure()
	return pg
}

func lines(out []byte) []string {
	return strings.Split(strings.TrimSpace(string(out)), "\n")
}

func TestAbsolute(t *testing.T) {
	pg := samplePage(t, true)
	out, stats := Absolute(pg)

	assert.Equal(t, Stats{Variables: 12, Constraints: 4}, stats)

	got := lines(out)
	for _, want := range []string{
		" * OPL 12.10.0.0 Model",
		" * Run: " + pg.ID.String(),
		" * Tree size: 3",
		" * Tree depth: 2",
		"int nb_rectangles=3;",
		"{int} rectangles_id={0,1,2};",
		"float ini_Height[rectangles_id]=[20,10,10];",
		"float ini_left[rectangles_id]=[0,2,14];",
		"float ini_top[rectangles_id]=[0,2,3];",
		"dvar float top[rectangles_id];",
		"left[0]==ini_left[0];",
		"top[0]==ini_top[0];",
		"top[1]==top[2];",
		"left[0]<=left[1];",
		"top[0]<=top[2];",
		"left[1]+Width[1]<=left[0]+Width[0];",
		"top[2]+Height[2]<=top[0]+Height[0];",
		"(left[1]+Width[1]<=left[2]) || (left[2]+Width[2]<=left[1]) || (top[1]+Height[1]<=top[2]) || (top[2]+Height[2]<=top[1]);",
		"Width[i]>=ini_Width[i];",
	} {
		assert.Contains(t, got, want)
	}
	assert.Equal(t, "}", got[len(got)-1])
}

func TestAbsoluteAlignmentAxis(t *testing.T) {
	pg := page.New(1)
	root := pg.Tree.New(0, 0, 40, 40)
	a := pg.Tree.New(2, 2, 10, 10)
	b := pg.Tree.New(2, 14, 10, 10)
	require.NoError(t, pg.Tree.AddChild(root.ID, a.ID))
	require.NoError(t, pg.Tree.AddChild(root.ID, b.ID))
	pg.Root = root.ID
	pg.Layout.Add(constraint.Aligned(constraint.AxisX, a, b))

	out, _ := Absolute(pg)
	assert.Contains(t, lines(out), "left[1]==left[2];")
}

func reduce(t *testing.T, pg *page.Page) *fault.Model {
	t.Helper()
	m, err := fault.Reduce(context.Background(), pg.AllConstraints(), pg.Graph)
	require.NoError(t, err)
	return m
}

func TestRelative(t *testing.T) {
	pg := samplePage(t, true)
	m := reduce(t, pg)
	require.True(t, m.Faulty.Has(property.Of(1, property.Y)))

	out, stats := Relative(pg, m)
	assert.Equal(t, Stats{Variables: m.Variables(), Constraints: m.Constraints.Len()}, stats)

	got := lines(out)
	assert.Contains(t, got, " * Relative modeling")
	assert.Contains(t, got, "dvar float ydot[ydot_id];")
	assert.Contains(t, got, "minimize sum(i in xdot_id)(abs(xdot[i]))+sum(i in ydot_id)(abs(ydot[i]))+sum(i in hdot_id)(abs(hdot[i]))+sum(i in wdot_id)(abs(wdot[i]));")

	aligned := regexp.MustCompile(`^\(2(\+ydot\[\d\])+\)==\(3(\+ydot\[\d\])+\);$`)
	var found bool
	for _, l := range got {
		if aligned.MatchString(l) {
			found = true
			assert.Contains(t, l, "ydot[1]")
			assert.Contains(t, l, "ydot[2]")
		}
	}
	assert.True(t, found, "no alignment equation in\n%s", out)

	// Every delta referenced in a term is declared.
	ref := regexp.MustCompile(`([xywh])dot\[(\d+)\]`)
	for _, match := range ref.FindAllStringSubmatch(string(out), -1) {
		decl := regexp.MustCompile(`\{int\} ` + match[1] + `dot_id=\{[^}]*\b` + match[2] + `\b`)
		assert.Regexp(t, decl, string(out), "delta %s undeclared", match[0])
	}
}

func TestRelativeWithoutFaults(t *testing.T) {
	pg := samplePage(t, false)
	m := reduce(t, pg)

	out, stats := Relative(pg, m)
	assert.Equal(t, Stats{}, stats)
	got := lines(out)
	assert.Contains(t, got, "{int} xdot_id={};")
	assert.Contains(t, got, "subject to {")
	assert.NotContains(t, string(out), "==")
}

func TestTerm(t *testing.T) {
	pg := samplePage(t, true)
	m := reduce(t, pg)

	// Width of the first box never changes, so it stays a constant.
	assert.Equal(t, "10", term(m, pg.Tree.Box(1), property.W))
	assert.Regexp(t, `^\(3(\+ydot\[\d\])*\+ydot\[2\](\+ydot\[\d\])*\)$`, term(m, pg.Tree.Box(2), property.Y))
}
