// Package pkg provides the core libraries for pipgraph dependency reporting.
//
// # Overview
//
// pipgraph turns a flat list of installed-package records into a dependency
// graph and renders it in several formats. The pkg directory is organized
// into five areas:
//
//  1. [pkggraph] - Graph construction and validation (dedup, missing edges,
//     conflicts, cycles)
//  2. [render] - Output renderers (text tree, JSON, Mermaid, Graphviz)
//  3. [source] - Input decoding for installed-package records
//  4. [errors] - Structured errors with machine-readable codes
//  5. [buildinfo] - Build-time version information
//
// # Architecture
//
// The typical data flow through pipgraph:
//
//	JSON package records
//	         ↓
//	    [source] package (decode)
//	         ↓
//	    [pkggraph] package (build graph, dedup, resolve, validate)
//	         ↓
//	    [render] package (text / JSON / Mermaid / Graphviz)
//	         ↓
//	    stdout or file
//
// # Quick Start
//
// Build a graph and render the default text tree:
//
//	records, _ := source.LoadFile("records.json")
//	g, diags := pkggraph.Build(records)
//	fmt.Print(render.Text(g, render.TextOptions{MaxDepth: -1, Encoding: "utf-8"}))
//
// [pkggraph]: https://pkg.go.dev/github.com/pipgraph/pipgraph/pkg/pkggraph
// [render]: https://pkg.go.dev/github.com/pipgraph/pipgraph/pkg/render
// [source]: https://pkg.go.dev/github.com/pipgraph/pipgraph/pkg/source
// [errors]: https://pkg.go.dev/github.com/pipgraph/pipgraph/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/pipgraph/pipgraph/pkg/buildinfo
package pkg
