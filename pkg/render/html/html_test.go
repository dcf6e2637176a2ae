package html

import (
	"regexp"
	"strings"
	"testing"

	"github.com/matzehuels/pagen/pkg/box"
)

func sampleTree(t *testing.T) (*box.Tree, box.ID) {
	t.Helper()
	tr := box.NewTree()
	root := tr.New(10, 10, 40, 30)
	a := tr.New(12, 12, 10, 8)
	b := tr.New(30, 12, 10, 8)
	b.Alter()
	for _, c := range []box.ID{a.ID, b.ID} {
		if err := tr.AddChild(root.ID, c); err != nil {
			t.Fatal(err)
		}
	}
	return tr, root.ID
}

func TestRenderNested(t *testing.T) {
	tr, root := sampleTree(t)
	out := string(Render(tr, root, Options{Seed: 1}))

	if !strings.HasPrefix(out, "<!DOCTYPE html>") {
		t.Fatalf("missing doctype:\n%s", out)
	}
	for _, want := range []string{
		`<div id="0" class="box" title="0" style="left:10px;top:10px;width:40px;height:30px;`,
		`<div id="1" class="box" title="1" style="left:2px;top:2px;width:10px;height:8px;`,
		`<div id="2" class="box altered" title="2 [Altered]" style="left:20px;top:2px;`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}

	// Children close before their parent does.
	if got := strings.Count(out, "<div"); got != strings.Count(out, "</div>") {
		t.Errorf("unbalanced divs: %d open, %d close", got, strings.Count(out, "</div>"))
	}
	inner := strings.Index(out, `<div id="2"`)
	if last := strings.LastIndex(out, "</div>\n</div>\n</div>\n</body>"); last < inner {
		t.Errorf("root does not enclose its children:\n%s", out)
	}
}

func TestRenderFlat(t *testing.T) {
	tr, root := sampleTree(t)
	out := string(Render(tr, root, Options{Flat: true, Seed: 1}))

	for _, want := range []string{
		`<div id="0" class="box" style="left:10px;top:10px;width:40px;height:30px;`,
		`<div id="1" class="box" style="left:12px;top:12px;`,
		`<div id="2" class="box altered" title="Altered" style="left:30px;top:12px;`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestRenderDeterministicColors(t *testing.T) {
	tr, root := sampleTree(t)
	a := Render(tr, root, Options{Seed: 42})
	b := Render(tr, root, Options{Seed: 42})
	if string(a) != string(b) {
		t.Error("same seed produced different documents")
	}
}

func TestColorPicker(t *testing.T) {
	re := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	c := NewColorPicker(3)
	for range 100 {
		col := c.Pick()
		if !re.MatchString(col) {
			t.Fatalf("Pick() = %q, want #rrggbb", col)
		}
		for i := 1; i < 7; i += 2 {
			if col[i] < '8' {
				t.Fatalf("Pick() = %q has a dark channel", col)
			}
		}
	}
}
