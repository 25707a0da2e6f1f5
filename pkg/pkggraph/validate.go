package pkggraph

// Conflict pairs a package with the requirement edges whose installed targets
// fail their declared constraints.
type Conflict struct {
	Package *InstalledPackage
	Edges   []*RequirementEdge
}

// ConflictingDeps scans every node's requirement edges and collects those
// whose resolved target version does not satisfy the declared constraint.
// Results follow graph insertion order; callers presenting them sort by
// normalized key at render time.
func ConflictingDeps(g *DependencyGraph) []Conflict {
	var conflicts []Conflict
	for _, p := range g.nodes {
		var bad []*RequirementEdge
		for _, e := range g.edges[p.key] {
			if g.IsConflicting(e) {
				bad = append(bad, e)
			}
		}
		if len(bad) > 0 {
			conflicts = append(conflicts, Conflict{Package: p, Edges: bad})
		}
	}
	return conflicts
}

// Cycle is a directed dependency cycle recorded in traversal order, from the
// root package back to itself (root, ..., root).
type Cycle []*InstalledPackage

// Root returns the package the cycle was discovered from.
func (c Cycle) Root() *InstalledPackage { return c[0] }

// CyclicDeps runs a depth-first search from every node and reports the first
// cycle, if any, that leads back to that node. The visited set is scoped to
// each root's search, so a package may legitimately appear in several cycles
// rooted at different packages. At most one cycle is reported per root; this
// is a deliberate completeness/cost tradeoff, not an enumeration of every
// elementary cycle. Results follow graph insertion order; presentation sorts
// by root key.
func CyclicDeps(g *DependencyGraph) []Cycle {
	var cycles []Cycle
	for _, root := range g.nodes {
		visited := make(map[string]bool)
		var path []*InstalledPackage
		if cycleDFS(g, root, root, visited, &path) {
			// The path is collected on unwind, deepest hop first.
			reverse(path)
			cycles = append(cycles, Cycle(path))
		}
	}
	return cycles
}

// cycleDFS follows resolved requirement edges from current, appending hops to
// path while unwinding a successful search. Reaching an already-visited node
// closes a cycle only when that node is the root; unresolved requirements
// have no children to follow and simply backtrack.
func cycleDFS(g *DependencyGraph, root, current *InstalledPackage, visited map[string]bool, path *[]*InstalledPackage) bool {
	if visited[current.key] {
		if current.key == root.key {
			*path = append(*path, current)
			return true
		}
		return false
	}
	visited[current.key] = true
	for _, e := range g.edges[current.key] {
		if e.Missing() {
			continue
		}
		if cycleDFS(g, root, e.target, visited, path) {
			*path = append(*path, current)
			return true
		}
	}
	return false
}

func reverse(s []*InstalledPackage) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
