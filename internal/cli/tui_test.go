package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/pagen/pkg/pipeline"
)

func sampleRows() []constraintRow {
	return []constraintRow{
		{Index: 0, Kind: "aligned", Constraint: "aligned(y): 1,2", Satisfied: false, Reduced: true,
			Properties: []propertyCell{{Name: "y_1", Faulty: true}, {Name: "y_2", Faulty: true}}},
		{Index: 1, Kind: "contained", Constraint: "1 within 0", Satisfied: true, Reduced: false,
			Properties: []propertyCell{{Name: "x_0"}, {Name: "x_1"}}},
		{Index: 2, Kind: "disjoint", Constraint: "disjoint: 1,2", Satisfied: true, Reduced: true},
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(m ConstraintListModel, keys ...string) ConstraintListModel {
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(ConstraintListModel)
	}
	return m
}

func TestConstraintListNavigation(t *testing.T) {
	m := NewConstraintListModel("page", sampleRows())

	m = update(m, "up")
	assert.Equal(t, 0, m.Cursor, "cursor stays at the top")

	m = update(m, "down", "j", "down")
	assert.Equal(t, 2, m.Cursor, "cursor stops at the last row")

	m = update(m, "k")
	row, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, "contained", row.Kind)
}

func TestConstraintListScrolls(t *testing.T) {
	m := NewConstraintListModel("page", sampleRows())
	m.Height = 1

	m = update(m, "down", "down")
	assert.Equal(t, 2, m.Offset)
	m = update(m, "up")
	assert.Equal(t, 1, m.Offset)
}

func TestConstraintListToggleDetail(t *testing.T) {
	m := NewConstraintListModel("page", sampleRows())
	assert.NotContains(t, m.View(), "y_1*")

	m = update(m, "enter")
	assert.True(t, m.Expanded)
	view := m.View()
	assert.Contains(t, view, "y_1*")
	assert.Contains(t, view, "[1/3]")

	m = update(m, "enter")
	assert.False(t, m.Expanded)
}

func TestConstraintListQuit(t *testing.T) {
	m := NewConstraintListModel("page", sampleRows())
	for _, k := range []string{"q", "esc"} {
		_, cmd := m.Update(key(k))
		require.NotNil(t, cmd, k)
		assert.Equal(t, tea.Quit(), cmd(), k)
	}
}

func TestConstraintListEmpty(t *testing.T) {
	m := NewConstraintListModel("page", nil)
	m = update(m, "enter", "down")
	assert.False(t, m.Expanded)
	assert.Contains(t, m.View(), "no constraints")
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestConstraintListWindowSize(t *testing.T) {
	m := NewConstraintListModel("page", sampleRows())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	assert.Equal(t, 28, next.(ConstraintListModel).Height)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 3})
	assert.Equal(t, 5, next.(ConstraintListModel).Height)
}

func TestRenderConstraintTable(t *testing.T) {
	out := renderConstraintTable(sampleRows(), 0, 3, -1)
	for _, want := range []string{"Kind", "aligned(y): 1,2", "violated", "1 within 0", "disjoint: 1,2"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "▸")
}

func TestConstraintRowsFromPipeline(t *testing.T) {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	opts := pipeline.DefaultOptions()
	opts.Seed = 21
	opts.MaxDepth = 4
	opts.Misalign = 1
	opts.WithModel = true
	opts.Logger = logger

	res, err := pipeline.NewRunner(nil, logger).Execute(context.Background(), opts)
	require.NoError(t, err)

	all := constraintRows(res, false)
	assert.Len(t, all, res.Stats.Constraints)

	violated := constraintRows(res, true)
	assert.Len(t, violated, res.Stats.Violated)
	for _, r := range violated {
		assert.False(t, r.Satisfied)
		assert.True(t, r.Reduced, "violated constraint %s missing from the reduced model", r.Constraint)
	}

	for _, r := range all {
		for _, p := range r.Properties {
			assert.True(t, strings.Contains(p.Name, "_"), p.Name)
		}
	}
}
