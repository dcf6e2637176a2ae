package render

import (
	"slices"
	"strings"

	"github.com/matzehuels/pagen/pkg/errors"
)

// Format names an output format.
type Format string

const (
	FormatText        Format = "text"
	FormatHTML        Format = "html"
	FormatHTMLFlat    Format = "html-flat"
	FormatDOT         Format = "dot"
	FormatGraph       Format = "graph"
	FormatOPL         Format = "opl"
	FormatOPLAbsolute Format = "opl-abs"
)

var formats = []Format{
	FormatText, FormatHTML, FormatHTMLFlat, FormatDOT, FormatGraph, FormatOPL, FormatOPLAbsolute,
}

// Formats returns every supported format.
func Formats() []Format { return slices.Clone(formats) }

// FormatNames returns the supported format names, for flag help and
// completion.
func FormatNames() []string {
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(formats, f) {
		return "", errors.New(errors.ErrCodeInvalidFormat,
			"unknown format %q (want one of %s)", s, strings.Join(FormatNames(), ", "))
	}
	return f, nil
}

// IsGraphviz reports whether f produces DOT source that can be rendered to
// SVG.
func (f Format) IsGraphviz() bool {
	return f == FormatDOT || f == FormatGraph
}

// Ext returns the file extension conventionally used for f.
func (f Format) Ext() string {
	switch f {
	case FormatText:
		return ".txt"
	case FormatHTML, FormatHTMLFlat:
		return ".html"
	case FormatDOT, FormatGraph:
		return ".dot"
	case FormatOPL, FormatOPLAbsolute:
		return ".mod"
	}
	return ""
}

// ContentType returns the MIME type of f.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML, FormatHTMLFlat:
		return "text/html; charset=utf-8"
	case FormatDOT, FormatGraph:
		return "text/vnd.graphviz; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}
