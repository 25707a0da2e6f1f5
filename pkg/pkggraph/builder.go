package pkggraph

import "github.com/pipgraph/pipgraph/pkg/errors"

// RawPackage is one installed-package record as produced by a package source.
// Name and Version identify the package; Requires lists its declared
// dependencies in declaration order.
type RawPackage struct {
	Name     string
	Version  string
	License  string
	Requires []RawRequirement
}

// RawRequirement is a single declared dependency: a target name plus an
// optional version constraint ("" accepts any version).
type RawRequirement struct {
	Name       string
	Constraint string
}

// Duplicate records an input entry discarded because its normalized name was
// already taken by an earlier record.
type Duplicate struct {
	Name     string            // discarded record's declared name
	Version  string            // discarded record's version
	Retained *InstalledPackage // the first-seen node that won
}

// Diagnostics collects non-fatal anomalies observed while building the graph.
// It is returned alongside the graph for the caller to report; nothing in
// this package writes to a log or global state.
type Diagnostics struct {
	Skipped    []RawPackage // records dropped for an unusable name
	Duplicates []Duplicate  // later records for an already-seen key
}

// Empty reports whether no anomalies were collected.
func (d *Diagnostics) Empty() bool {
	return len(d.Skipped) == 0 && len(d.Duplicates) == 0
}

// Build converts a flat list of installed-package records into a dependency
// graph.
//
// Records are processed in source order. The first record for each normalized
// name becomes the retained node; later records for the same name are
// reported as duplicates and not inserted. Records without a usable name are
// dropped and reported. Every declared requirement becomes an edge: resolved
// against the retained nodes by normalized name, or flagged missing when no
// node matches. Edges preserve their declaration order.
func Build(records []RawPackage) (*DependencyGraph, *Diagnostics) {
	diags := &Diagnostics{}

	g := &DependencyGraph{
		index: make(map[string]*InstalledPackage, len(records)),
		edges: make(map[string][]*RequirementEdge, len(records)),
	}

	for _, rec := range records {
		if errors.ValidatePackageName(rec.Name) != nil {
			diags.Skipped = append(diags.Skipped, rec)
			continue
		}
		key := NormalizeKey(rec.Name)
		if first, ok := g.index[key]; ok {
			diags.Duplicates = append(diags.Duplicates, Duplicate{
				Name:     rec.Name,
				Version:  rec.Version,
				Retained: first,
			})
			continue
		}
		node := &InstalledPackage{
			key:     key,
			name:    rec.Name,
			version: rec.Version,
			license: rec.License,
		}
		g.index[key] = node
		g.nodes = append(g.nodes, node)
	}

	// Second pass so forward references resolve regardless of input order.
	for _, rec := range records {
		if errors.ValidatePackageName(rec.Name) != nil {
			continue
		}
		key := NormalizeKey(rec.Name)
		if _, done := g.edges[key]; done {
			continue // duplicate record, edges already taken from the first
		}
		edges := make([]*RequirementEdge, 0, len(rec.Requires))
		for _, req := range rec.Requires {
			targetKey := NormalizeKey(req.Name)
			edges = append(edges, &RequirementEdge{
				key:        targetKey,
				name:       req.Name,
				constraint: req.Constraint,
				target:     g.index[targetKey], // nil when missing
			})
		}
		g.edges[key] = edges
	}

	return g, diags
}
