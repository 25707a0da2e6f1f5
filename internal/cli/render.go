package cli

import (
	"context"

	"github.com/pipgraph/pipgraph/pkg/pkggraph"
	"github.com/pipgraph/pipgraph/pkg/render"
)

// renderOutput dispatches to exactly one renderer based on the selected
// output mode. The mode flags are mutually exclusive; text is the default.
func renderOutput(ctx context.Context, g *pkggraph.DependencyGraph, opts *treeOpts) ([]byte, error) {
	switch {
	case opts.jsonTree:
		s, err := render.JSONTree(g)
		if err != nil {
			return nil, err
		}
		return append([]byte(s), '\n'), nil

	case opts.jsonFlat:
		s, err := render.JSONFlat(g)
		if err != nil {
			return nil, err
		}
		return append([]byte(s), '\n'), nil

	case opts.mermaid:
		var v pkggraph.View = g
		if opts.reverse {
			v = g.Reversed()
		}
		return []byte(render.Mermaid(v)), nil

	case opts.graphvizFormat != "":
		return render.Graphviz(ctx, g, opts.graphvizFormat, opts.reverse)

	default:
		return []byte(render.Text(g, render.TextOptions{
			MaxDepth:       opts.depth,
			Encoding:       opts.encoding,
			ListAll:        opts.listAll,
			Frozen:         opts.freeze,
			IncludeLicense: opts.license,
			Reverse:        opts.reverse,
		})), nil
	}
}
