// Package render turns generated pages into output artifacts.
//
// # Overview
//
// Each output format lives in its own subpackage:
//
//   - [text]: one line of coordinates per box
//   - [html]: a browsable HTML document, nested or flat
//   - [dot]: Graphviz sources for the box tree and the dependency graph
//   - [opl]: constraint models for a solver, absolute or closure-reduced
//
// This package holds what they share: the [Format] names accepted by the
// CLI and the HTTP server, and SVG conversion to PDF and PNG.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert an SVG produced by
// [dot.RenderSVG] using the external rsvg-convert tool (from librsvg).
//
//	svg, err := dot.RenderSVG(dot.Tree(pg))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [text]: github.com/matzehuels/pagen/pkg/render/text
// [html]: github.com/matzehuels/pagen/pkg/render/html
// [dot]: github.com/matzehuels/pagen/pkg/render/dot
// [opl]: github.com/matzehuels/pagen/pkg/render/opl
// [dot.RenderSVG]: github.com/matzehuels/pagen/pkg/render/dot#RenderSVG
package render
