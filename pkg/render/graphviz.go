package render

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/pipgraph/pipgraph/pkg/errors"
	"github.com/pipgraph/pipgraph/pkg/pkggraph"
)

// FormatDOT requests the raw graph-description text instead of an engine
// rendering.
const FormatDOT = "dot"

// engineFormats are the output formats the embedded Graphviz engine accepts.
var engineFormats = map[string]graphviz.Format{
	"svg":  graphviz.SVG,
	"png":  graphviz.PNG,
	"jpg":  graphviz.JPG,
	"xdot": graphviz.XDOT,
}

// SupportedFormats lists the accepted --graphviz format values, sorted.
func SupportedFormats() []string {
	out := []string{FormatDOT}
	for f := range engineFormats {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Graphviz renders the graph through the Graphviz backend.
//
// Format "dot" returns the graph-description text verbatim, with body lines
// sorted for determinism. Any other supported format pipes that text through
// the rendering engine and returns its payload, which may be binary. An
// unknown format fails with UNSUPPORTED_FORMAT; a backend that cannot be
// initialized or run fails with BACKEND_UNAVAILABLE. Nothing is partially
// emitted on failure.
func Graphviz(ctx context.Context, g *pkggraph.DependencyGraph, format string, reverse bool) ([]byte, error) {
	dot := toDOT(g, reverse)
	if format == FormatDOT {
		return []byte(dot), nil
	}

	engineFormat, ok := engineFormats[format]
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupportedFormat,
			"%s is not a supported output format (supported: %s)",
			format, strings.Join(SupportedFormats(), ", "))
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBackendUnavailable, err, "initialize graphviz")
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse DOT")
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, engineFormat, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeBackendUnavailable, err, "render %s", format)
	}
	return buf.Bytes(), nil
}

// toDOT builds the graph-description text. Body lines are deduplicated and
// sorted so equal graphs always produce byte-identical documents.
//
// The forward direction declares one node per requirement target and points
// each edge from the dependency to its dependent; the reverse direction
// declares one node per package, points edges from package to dependency,
// and draws missing dependencies dashed.
func toDOT(g *pkggraph.DependencyGraph, reverse bool) string {
	body := make(map[string]bool)

	for _, p := range g.Nodes() {
		if reverse {
			body[fmt.Sprintf("  %q [label=\"%s\\n%s\"];", p.Key(), p.ProjectName(), p.Version())] = true
		}
		for _, e := range g.Children(p.Key()) {
			switch {
			case !reverse:
				body[fmt.Sprintf("  %q [label=\"%s\\n%s\"];", e.Key(), e.ProjectName(), e.Version())] = true
				body[fmt.Sprintf("  %q -> %q [label=%q];", e.Key(), p.Key(), edgeLabel(e))] = true
			case e.Missing():
				body[fmt.Sprintf("  %q [label=\"%s\\n(missing)\", style=dashed];", e.Key(), e.ProjectName())] = true
				body[fmt.Sprintf("  %q -> %q [style=dashed];", p.Key(), e.Key())] = true
			default:
				body[fmt.Sprintf("  %q -> %q [label=%q];", p.Key(), e.Key(), edgeLabel(e))] = true
			}
		}
	}

	var b strings.Builder
	b.WriteString("digraph {\n")
	for _, line := range sortedKeys(body) {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("}\n")
	return b.String()
}
