// Package pkggraph models installed packages and their declared requirements
// as a directed dependency graph.
//
// The graph is built once per invocation from a flat list of raw package
// records and is immutable afterwards. Nodes are installed packages, keyed by
// a normalized name; edges point from a package to each of its declared
// requirements and carry the version constraint that produced them. A
// requirement that does not match any installed package stays on the edge as
// a missing reference and never becomes a vertex.
//
// Read operations (insertion-order and sorted iteration, children, parents,
// reversed views) never mutate the underlying graph; sorting and reversing
// produce new views. Validation passes for conflicting version requirements
// and circular dependencies are provided alongside and are informational:
// a graph with cycles or conflicts is still renderable.
package pkggraph
