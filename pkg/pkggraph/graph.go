package pkggraph

import (
	"slices"
	"strings"
)

// View is the read contract shared by forward and reversed graphs.
// All renderers and validation passes operate through it and never mutate.
type View interface {
	// Nodes returns the installed packages in this view's node order.
	Nodes() []*InstalledPackage
	// Children returns the requirement edges declared by the node with the
	// given key, or nil when no such node exists.
	Children(key string) []*RequirementEdge
}

// DependencyGraph maps installed packages to their ordered requirement edges.
// Nodes keep input order; edges keep declaration order. The graph is never
// mutated after Build returns.
type DependencyGraph struct {
	nodes []*InstalledPackage
	index map[string]*InstalledPackage
	edges map[string][]*RequirementEdge
}

// Nodes returns the installed packages in insertion order.
// The returned slice is a copy; mutating it does not affect the graph.
func (g *DependencyGraph) Nodes() []*InstalledPackage {
	return slices.Clone(g.nodes)
}

// Node looks up an installed package by normalized key.
func (g *DependencyGraph) Node(key string) (*InstalledPackage, bool) {
	p, ok := g.index[key]
	return p, ok
}

// Len returns the number of installed packages in the graph.
func (g *DependencyGraph) Len() int { return len(g.nodes) }

// Children returns the requirement edges declared by the node with the given
// key, in declaration order. A key without a node yields nil, never an error.
func (g *DependencyGraph) Children(key string) []*RequirementEdge {
	return g.edges[key]
}

// Parents returns the edges of the reversed view for the given key: one edge
// per installed package that declares a resolved requirement on it.
func (g *DependencyGraph) Parents(key string) []*RequirementEdge {
	var parents []*RequirementEdge
	for _, p := range g.nodes {
		for _, e := range g.edges[p.key] {
			if !e.Missing() && e.key == key {
				parents = append(parents, &RequirementEdge{
					key:        p.key,
					name:       p.name,
					constraint: e.constraint,
					target:     p,
				})
			}
		}
	}
	return parents
}

// Sorted returns a new graph with nodes ordered by normalized key and each
// node's edges reordered by target key. The receiver is left untouched;
// sorting twice yields the same order as sorting once.
func (g *DependencyGraph) Sorted(descending bool) *DependencyGraph {
	nodes := slices.Clone(g.nodes)
	slices.SortStableFunc(nodes, func(a, b *InstalledPackage) int {
		return keyCompare(a.key, b.key, descending)
	})

	edges := make(map[string][]*RequirementEdge, len(g.edges))
	for key, children := range g.edges {
		sorted := slices.Clone(children)
		slices.SortStableFunc(sorted, func(a, b *RequirementEdge) int {
			return keyCompare(a.key, b.key, descending)
		})
		edges[key] = sorted
	}

	return &DependencyGraph{nodes: nodes, index: g.index, edges: edges}
}

func keyCompare(a, b string, descending bool) int {
	if descending {
		return strings.Compare(b, a)
	}
	return strings.Compare(a, b)
}

// Reversed builds the view with edge direction flipped: a package's children
// become the packages that declare a resolved requirement on it. Missing
// edges have no source node and do not appear in the reversed view. Each
// reversed edge carries the constraint of the forward edge that produced it.
func (g *DependencyGraph) Reversed() *ReversedGraph {
	edges := make(map[string][]*RequirementEdge, len(g.nodes))
	for _, p := range g.nodes {
		for _, e := range g.edges[p.key] {
			if e.Missing() {
				continue
			}
			edges[e.key] = append(edges[e.key], &RequirementEdge{
				key:        p.key,
				name:       p.name,
				constraint: e.constraint,
				target:     p,
			})
		}
	}

	return &ReversedGraph{DependencyGraph{
		nodes: slices.Clone(g.nodes),
		index: g.index,
		edges: edges,
	}}
}

// ReversedGraph is a DependencyGraph with edge direction flipped. It shares
// the forward graph's read contract; only the meaning of Children changes.
type ReversedGraph struct {
	DependencyGraph
}

// Sorted returns a key-ordered copy of the reversed view.
func (g *ReversedGraph) Sorted(descending bool) *ReversedGraph {
	return &ReversedGraph{*g.DependencyGraph.Sorted(descending)}
}

// Reversed flips the view back. The result contains only the resolved edges
// of the original forward graph, since missing edges never survive a reversal.
func (g *ReversedGraph) Reversed() *DependencyGraph {
	return &g.DependencyGraph.Reversed().DependencyGraph
}
