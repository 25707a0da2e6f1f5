package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pipgraph/pipgraph/pkg/pkggraph"
)

// reservedIDs are identifier strings the Mermaid grammar claims for itself:
// language keywords, click-target tokens, and C4-diagram tokens. A package
// key colliding with one must be disambiguated or the flowchart fails to
// parse.
var reservedIDs = map[string]bool{
	"C4Component":  true,
	"C4Container":  true,
	"C4Deployment": true,
	"C4Dynamic":    true,
	"_blank":       true,
	"_parent":      true,
	"_self":        true,
	"_top":         true,
	"call":         true,
	"class":        true,
	"classDef":     true,
	"click":        true,
	"end":          true,
	"flowchart":    true,
	"flowchart-v2": true,
	"graph":        true,
	"interpolate":  true,
	"linkStyle":    true,
	"style":        true,
	"subgraph":     true,
}

// idTable maps package keys to Mermaid-safe node ids. Keys that collide with
// a reserved id get a "_1", "_2", ... suffix; the mapping is cached for the
// duration of one render so repeated references reuse the same id.
type idTable struct {
	ids  map[string]string
	used map[string]bool
}

func newIDTable() *idTable {
	return &idTable{ids: make(map[string]string), used: make(map[string]bool)}
}

func (t *idTable) id(key string) string {
	if id, ok := t.ids[key]; ok {
		return id
	}
	id := key
	for n := 1; reservedIDs[id] || t.used[id]; n++ {
		id = fmt.Sprintf("%s_%d", key, n)
	}
	t.ids[key] = id
	t.used[id] = true
	return id
}

// Mermaid renders the graph as a Mermaid flowchart document.
//
// A forward graph emits one node per package labeled with name and version
// and one edge per resolved dependency labeled with its constraint (or
// "any"); missing dependencies become a dashed node labeled "(missing)" with
// an unlabeled dashed edge. A reversed graph emits an edge from each
// reverse-dependency to the package it depends on, labeled with the original
// constraint. Edges and nodes are each emitted in lexicographic order of
// their rendered line so output is deterministic.
func Mermaid(v pkggraph.View) string {
	ids := newIDTable()
	nodes := make(map[string]bool)
	edges := make(map[string]bool)

	_, reversed := v.(*pkggraph.ReversedGraph)
	for _, p := range v.Nodes() {
		pkgID := ids.id(p.Key())
		nodes[fmt.Sprintf(`%s["%s\n%s"]`, pkgID, p.ProjectName(), p.Version())] = true
		for _, e := range v.Children(p.Key()) {
			depID := ids.id(e.Key())
			if reversed {
				// Children of a reversed node are its dependents; the arrow
				// points from dependent back to the package.
				edges[fmt.Sprintf(`%s -- "%s" --> %s`, depID, edgeLabel(e), pkgID)] = true
				continue
			}
			if e.Missing() {
				nodes[fmt.Sprintf(`%s["%s\n(missing)"]:::missing`, depID, e.ProjectName())] = true
				edges[fmt.Sprintf(`%s -.-> %s`, pkgID, depID)] = true
			} else {
				edges[fmt.Sprintf(`%s -- "%s" --> %s`, pkgID, edgeLabel(e), depID)] = true
			}
		}
	}

	lines := []string{
		"flowchart TD",
		"classDef missing stroke-dasharray: 5",
	}
	lines = append(lines, sortedKeys(edges)...)
	lines = append(lines, sortedKeys(nodes)...)

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("    ")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// edgeLabel returns the edge's constraint, or "any" when it accepts every
// version.
func edgeLabel(e *pkggraph.RequirementEdge) string {
	if e.Constraint() == "" {
		return "any"
	}
	return e.Constraint()
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
