package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/pagen/pkg/pipeline"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	faultyStyle     = lipgloss.NewStyle().Foreground(colorRed)
)

const defaultListHeight = 15

// =============================================================================
// Constraint rows
// =============================================================================

// constraintRow is one constraint of a page as shown by inspect.
type constraintRow struct {
	Index      int
	Kind       string
	Constraint string
	Satisfied  bool
	// Reduced reports whether the constraint is part of the reduced model.
	Reduced    bool
	Properties []propertyCell
}

type propertyCell struct {
	Name   string
	Faulty bool
}

// constraintRows lists the constraints of res in page order. With
// violatedOnly, satisfied constraints are skipped.
func constraintRows(res *pipeline.Result, violatedOnly bool) []constraintRow {
	pg, m := res.Page, res.Model
	var rows []constraintRow
	for i, c := range pg.AllConstraints() {
		if violatedOnly && c.Verdict() {
			continue
		}
		row := constraintRow{
			Index:      i,
			Kind:       c.Kind().String(),
			Constraint: c.String(),
			Satisfied:  c.Verdict(),
			Reduced:    m.Constraints.Has(c),
		}
		for _, p := range c.Properties(pg.Graph, nil).Sorted() {
			row.Properties = append(row.Properties, propertyCell{Name: p.Name(), Faulty: m.Faulty.Has(p)})
		}
		rows = append(rows, row)
	}
	return rows
}

func verdictLabel(ok bool) string {
	if ok {
		return "ok"
	}
	return "violated"
}

func reducedLabel(in bool) string {
	if in {
		return "yes"
	}
	return "no"
}

// renderConstraintTable renders rows[from:to] as a table. The row at cursor
// gets a marker; pass -1 for none.
func renderConstraintTable(rows []constraintRow, from, to, cursor int) string {
	cells := make([][]string, 0, to-from)
	for i := from; i < to; i++ {
		r := rows[i]
		marker := "  "
		if i == cursor {
			marker = "▸ "
		}
		cells = append(cells, []string{
			marker, strconv.Itoa(r.Index), r.Kind, r.Constraint,
			verdictLabel(r.Satisfied), reducedLabel(r.Reduced),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "#", "Kind", "Constraint", "Verdict", "Reduced").
		Rows(cells...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			idx := from + row
			if idx >= to {
				return lipgloss.NewStyle()
			}
			r := rows[idx]
			base := lipgloss.NewStyle()
			if idx == cursor {
				base = base.Bold(true)
			}
			switch {
			case col == 4 && !r.Satisfied:
				return base.Foreground(colorRed)
			case col == 4:
				return base.Foreground(colorGreen)
			case !r.Reduced:
				return base.Foreground(colorGray)
			}
			return base.Foreground(colorWhite)
		})
	return t.Render()
}

// renderProperties lists the properties of r, marking faulty ones.
func renderProperties(r constraintRow) string {
	if len(r.Properties) == 0 {
		return listDimStyle.Render("  no properties")
	}
	parts := make([]string, len(r.Properties))
	for i, p := range r.Properties {
		if p.Faulty {
			parts[i] = faultyStyle.Render(p.Name + "*")
		} else {
			parts[i] = p.Name
		}
	}
	return "  " + strings.Join(parts, " ")
}

// =============================================================================
// ConstraintListModel - Interactive constraint browser
// =============================================================================

// ConstraintListModel is the bubbletea model for browsing the constraints
// of a generated page.
type ConstraintListModel struct {
	Title    string
	Rows     []constraintRow
	Cursor   int
	Offset   int
	Height   int
	Expanded bool
}

// NewConstraintListModel creates a new constraint list model.
func NewConstraintListModel(title string, rows []constraintRow) ConstraintListModel {
	return ConstraintListModel{Title: title, Rows: rows, Height: defaultListHeight}
}

func (m ConstraintListModel) Init() tea.Cmd {
	return nil
}

func (m ConstraintListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter", " ":
			if len(m.Rows) > 0 {
				m.Expanded = !m.Expanded
			}
		}
	case tea.WindowSizeMsg:
		// Leave room for the title, help, detail and footer lines.
		m.Height = max(msg.Height-12, 5)
	}
	return m, nil
}

func (m ConstraintListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ properties  q quit"))
	b.WriteString("\n\n")

	if len(m.Rows) == 0 {
		b.WriteString(listDimStyle.Render("  no constraints"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Rows))
	b.WriteString(renderConstraintTable(m.Rows, m.Offset, end, m.Cursor))
	b.WriteString("\n")

	if m.Expanded {
		b.WriteString("\n")
		b.WriteString(renderProperties(m.Rows[m.Cursor]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))
	return b.String()
}

// Selected returns the row under the cursor.
func (m ConstraintListModel) Selected() (constraintRow, bool) {
	if len(m.Rows) == 0 {
		return constraintRow{}, false
	}
	return m.Rows[m.Cursor], true
}
