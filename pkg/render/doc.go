// Package render turns a dependency graph into one of the supported output
// representations: an indented text tree (ASCII or Unicode box-drawing), a
// nested JSON document, a flat JSON-per-package document, a Mermaid
// flowchart, or Graphviz output (DOT text or any engine format).
//
// Every renderer is an independent read-only consumer of the graph with its
// own traversal rules (depth limiting, cycle suppression, id sanitization).
// Exactly one renderer runs per invocation. Only the Graphviz renderer can
// fail: when the rendering backend cannot be initialized or the requested
// format is not among its engines.
package render
