// Package pkg provides the libraries behind pagen, a generator of random
// nested-box page layouts with injected layout faults.
//
// # Overview
//
// pagen builds a random tree of rectangular boxes, lays it out with row and
// column flows, and deliberately breaks some placements. While laying out, it
// records which box property was computed from which. From the finished page
// it derives the geometric constraints the layout should satisfy and reduces
// them to the smallest set a repair model has to consider: the fault closure.
//
// # Architecture
//
//	[generate] random tree + flow layouts + fault injection
//	     ↓
//	[page] box tree, dependency graph, property registry, constraints
//	     ↓
//	[fault] closure of the violated constraints
//	     ↓
//	[render] text, HTML, DOT, OPL (+ SVG/PDF/PNG via Graphviz)
//
// [pipeline] runs the three stages for the CLI and for [server].
//
// # Main Packages
//
// ## Core Model
//
// [box] - Rectangles with padding, nested in an arena-backed tree.
//
// [property] - Box attributes (absolute and delta) and the per-page registry
// that interns them into stable handles.
//
// [depgraph] - Directed "computed from" graph between properties, with
// direct and transitive influence queries.
//
// [constraint] - Aligned, disjoint and contained predicates, their verdicts
// and the properties a change would disturb.
//
// [fault] - The fault-closure algorithm and the reduced repair model.
//
// ## Generation and Output
//
// [generate] - Seeded random pickers, horizontal and vertical flows, fault
// injection and the page generator.
//
// [render] - Output formats and image conversion.
//
// ## Infrastructure
//
// [cache] - Content-addressed cache for rendered images: FileCache for the
// CLI, MemoryCache for the server.
//
// [errors] - Structured error codes shared by the CLI and the server.
//
// [observability] - Optional hooks around pipeline stages and HTTP requests.
//
// [buildinfo] - Version information injected at build time.
//
// [box]: github.com/matzehuels/pagen/pkg/box
// [property]: github.com/matzehuels/pagen/pkg/property
// [depgraph]: github.com/matzehuels/pagen/pkg/depgraph
// [constraint]: github.com/matzehuels/pagen/pkg/constraint
// [fault]: github.com/matzehuels/pagen/pkg/fault
// [generate]: github.com/matzehuels/pagen/pkg/generate
// [page]: github.com/matzehuels/pagen/pkg/page
// [render]: github.com/matzehuels/pagen/pkg/render
// [pipeline]: github.com/matzehuels/pagen/pkg/pipeline
// [server]: github.com/matzehuels/pagen/pkg/server
// [cache]: github.com/matzehuels/pagen/pkg/cache
// [errors]: github.com/matzehuels/pagen/pkg/errors
// [observability]: github.com/matzehuels/pagen/pkg/observability
// [buildinfo]: github.com/matzehuels/pagen/pkg/buildinfo
package pkg
