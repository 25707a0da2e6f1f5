package render

import (
	"slices"
	"strings"

	"github.com/pipgraph/pipgraph/pkg/pkggraph"
)

// TextOptions controls the text tree renderer.
type TextOptions struct {
	// MaxDepth bounds how deep the tree descends below top-level nodes.
	// Negative means unbounded; 0 renders top-level nodes only.
	MaxDepth int
	// Encoding selects the tree style: any "utf*" encoding gets Unicode
	// box-drawing branches, everything else plain ASCII indentation.
	Encoding string
	// ListAll renders every package at top level instead of only the
	// packages nothing else depends on.
	ListAll bool
	// Frozen renders pip-freeze style exact pins without bullets.
	// Mutually exclusive with IncludeLicense.
	Frozen bool
	// IncludeLicense annotates each dependency line with its license.
	IncludeLicense bool
	// Reverse renders the reversed graph: children are the packages that
	// depend on a node rather than the packages it depends on.
	Reverse bool
}

// Text renders the graph as a multi-line tree.
//
// Top-level nodes are visited in normalized-key order. By default only nodes
// that are never the target of a resolved edge are top-level; ListAll lifts
// every node to the top. Recursion tracks the chain of names descended
// through below the root: a child whose name is already on the chain is not
// rendered again. The root itself is not on the chain, so the edge closing a
// cycle back to the root appears once, without expansion, and traversal of
// cyclic graphs stays finite.
func Text(g *pkggraph.DependencyGraph, opts TextOptions) string {
	sorted := g.Sorted(false)
	var view pkggraph.View = sorted
	if opts.Reverse {
		view = sorted.Reversed()
	}

	nodes := view.Nodes()
	if !opts.ListAll {
		branch := make(map[string]bool)
		for _, n := range nodes {
			for _, e := range view.Children(n.Key()) {
				if !e.Missing() {
					branch[e.Key()] = true
				}
			}
		}
		nodes = slices.DeleteFunc(nodes, func(p *pkggraph.InstalledPackage) bool {
			return branch[p.Key()]
		})
	}

	unicode := strings.HasPrefix(strings.ToLower(opts.Encoding), "utf")

	var lines []string
	for _, n := range nodes {
		lines = append(lines, n.RenderAsRoot())
		var chain []string
		children := expandable(view.Children(n.Key()), chain, 1, opts.MaxDepth)
		for i, e := range children {
			if unicode && !opts.Frozen {
				unicodeTree(view, e, "", i == len(children)-1, chain, 1, opts, &lines)
			} else {
				asciiTree(view, e, 2, chain, 1, opts, &lines)
			}
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// expandable filters the children that may be rendered at the given depth:
// the name must not already be on the ancestor chain and the depth must not
// exceed the configured maximum.
func expandable(children []*pkggraph.RequirementEdge, chain []string, depth, maxDepth int) []*pkggraph.RequirementEdge {
	if maxDepth >= 0 && depth > maxDepth {
		return nil
	}
	var out []*pkggraph.RequirementEdge
	for _, e := range children {
		if !slices.Contains(chain, e.ProjectName()) {
			out = append(out, e)
		}
	}
	return out
}

// extend returns a copy of the ancestor chain with one more name appended.
// Chains are passed by value through the recursion so sibling subtrees never
// observe each other's ancestors.
func extend(chain []string, name string) []string {
	return append(slices.Clip(slices.Clone(chain)), name)
}

func asciiTree(v pkggraph.View, e *pkggraph.RequirementEdge, indent int, chain []string, depth int, opts TextOptions, out *[]string) {
	line := strings.Repeat(" ", indent)
	if !opts.Frozen {
		line += "- "
	}
	line += e.RenderAsBranch(opts.Frozen)
	if opts.IncludeLicense && !e.Missing() {
		line += " " + e.Target().License()
	}
	*out = append(*out, line)

	next := extend(chain, e.ProjectName())
	for _, c := range expandable(v.Children(e.Key()), next, depth+1, opts.MaxDepth) {
		asciiTree(v, c, indent+2, next, depth+1, opts, out)
	}
}

func unicodeTree(v pkggraph.View, e *pkggraph.RequirementEdge, prefix string, isLast bool, chain []string, depth int, opts TextOptions, out *[]string) {
	bullet := "├── "
	if isLast {
		bullet = "└── "
	}
	line := prefix + bullet + e.RenderAsBranch(false)
	if opts.IncludeLicense && !e.Missing() {
		line += " " + e.Target().License()
	}
	*out = append(*out, line)

	childPrefix := prefix + "│   "
	if isLast {
		childPrefix = prefix + "    "
	}
	next := extend(chain, e.ProjectName())
	children := expandable(v.Children(e.Key()), next, depth+1, opts.MaxDepth)
	for i, c := range children {
		unicodeTree(v, c, childPrefix, i == len(children)-1, next, depth+1, opts, out)
	}
}
