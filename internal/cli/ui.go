package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/pagen/pkg/pipeline"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// StyleError for violated constraints and failures.
	StyleError = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey     = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printDetail prints a detail line (indented).
func printDetail(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(w io.Writer, path string) {
	fmt.Fprintln(w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, styleKey.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(w io.Writer, description, cmd string) {
	fmt.Fprintln(w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints the summary of a pipeline run.
func printStats(w io.Writer, res *pipeline.Result) {
	s := res.Stats
	fmt.Fprintln(w, StyleTitle.Render("Page "+res.Page.ID.String()))
	printKeyValue(w, "seed", strconv.FormatUint(res.Seed, 10))
	printKeyValue(w, "boxes", fmt.Sprintf("%d (depth %d)", s.Boxes, s.Depth))
	printKeyValue(w, "graph", fmt.Sprintf("%d properties, %d edges", s.Properties, s.Edges))
	printKeyValue(w, "faults", formatFaults(s))
	printKeyValue(w, "constraints", fmt.Sprintf("%d, %s violated", s.Constraints, violatedCount(s.Violated)))
	if res.Model != nil {
		printKeyValue(w, "closure", fmt.Sprintf("%d constraints, %d faulty, %d variables",
			s.ReducedConstraints, s.Faulty, s.Variables))
	}
	if s.Model.Variables > 0 || s.Model.Constraints > 0 {
		printKeyValue(w, "model", fmt.Sprintf("%d variables, %d constraints", s.Model.Variables, s.Model.Constraints))
	}
	printTimings(w, s)
}

func formatFaults(s pipeline.Stats) string {
	f := s.Faults
	if f.Total() == 0 {
		return "none"
	}
	var parts []string
	add := func(n int, label string) {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, label))
		}
	}
	add(f.HorizontalMisalignments, "horizontal misalignment")
	add(f.VerticalMisalignments, "vertical misalignment")
	add(f.Overlaps, "overlap")
	add(f.Overflows, "overflow")
	return strings.Join(parts, ", ")
}

func violatedCount(n int) string {
	if n == 0 {
		return StyleSuccess.Render("0")
	}
	return StyleError.Render(strconv.Itoa(n))
}

// printTimings prints stage durations on a single line.
func printTimings(w io.Writer, s pipeline.Stats) {
	parts := []string{"generate " + s.GenerateTime.String()}
	if s.ReduceTime > 0 {
		parts = append(parts, "reduce "+s.ReduceTime.String())
	}
	parts = append(parts, "render "+s.RenderTime.String())

	status := iconFresh
	statusStyle := styleComputed
	if s.CacheHit {
		status = iconCached
		statusStyle = styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	line += StyleDim.Render(" · ") + statusStyle.Render(status)
	fmt.Fprintln(w, line)
}
