package render

import (
	"encoding/json"
	"testing"

	"github.com/pipgraph/pipgraph/pkg/pkggraph"
)

func TestJSONTree(t *testing.T) {
	g := buildGraph(t, []pkggraph.RawPackage{
		{Name: "Flask", Version: "2.3.2", Requires: []pkggraph.RawRequirement{
			{Name: "Werkzeug", Constraint: ">=2.3.3"},
		}},
		{Name: "Werkzeug", Version: "2.3.7"},
	})

	out, err := JSONTree(g)
	if err != nil {
		t.Fatalf("JSONTree() error: %v", err)
	}

	var roots []treeNode
	if err := json.Unmarshal([]byte(out), &roots); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	// Only packages that appear as somebody's dependency are roots.
	if len(roots) != 1 {
		t.Fatalf("got %d roots, want 1: %s", len(roots), out)
	}
	root := roots[0]
	if root.Key != "werkzeug" || root.PackageName != "Werkzeug" || root.InstalledVersion != "2.3.7" {
		t.Errorf("root = %+v", root)
	}
	if root.RequiredVersion != "Any" {
		t.Errorf("required_version = %q, want the literal %q", root.RequiredVersion, "Any")
	}
	if root.Dependencies == nil || len(root.Dependencies) != 0 {
		t.Errorf("dependencies = %v, want present and empty", root.Dependencies)
	}
}

func TestJSONTreeDescendingRoots(t *testing.T) {
	g := buildGraph(t, []pkggraph.RawPackage{
		{Name: "app", Version: "1.0", Requires: []pkggraph.RawRequirement{
			{Name: "alpha"},
			{Name: "zeta"},
		}},
		{Name: "alpha", Version: "1.0"},
		{Name: "zeta", Version: "1.0"},
	})

	out, err := JSONTree(g)
	if err != nil {
		t.Fatalf("JSONTree() error: %v", err)
	}
	var roots []treeNode
	if err := json.Unmarshal([]byte(out), &roots); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(roots) != 2 || roots[0].Key != "zeta" || roots[1].Key != "alpha" {
		t.Errorf("roots not in descending key order: %s", out)
	}
}

func TestJSONTreeEmptyGraph(t *testing.T) {
	g := buildGraph(t, nil)
	out, err := JSONTree(g)
	if err != nil {
		t.Fatalf("JSONTree() error: %v", err)
	}
	if out != "[]" {
		t.Errorf("JSONTree() = %q, want %q", out, "[]")
	}
}

func TestJSONFlat(t *testing.T) {
	g := buildGraph(t, []pkggraph.RawPackage{
		{Name: "Flask", Version: "2.3.2", Requires: []pkggraph.RawRequirement{
			{Name: "Werkzeug", Constraint: ">=2.3.3"},
			{Name: "ghost"},
		}},
		{Name: "Werkzeug", Version: "2.3.7"},
	})

	out, err := JSONFlat(g)
	if err != nil {
		t.Fatalf("JSONFlat() error: %v", err)
	}

	var entries []flatEntry
	if err := json.Unmarshal([]byte(out), &entries); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want one per installed package", len(entries))
	}

	// Entries follow normalized-key order.
	if entries[0].Package.Key != "flask" || entries[1].Package.Key != "werkzeug" {
		t.Errorf("entry order = [%s %s]", entries[0].Package.Key, entries[1].Package.Key)
	}

	deps := entries[0].Dependencies
	if len(deps) != 2 {
		t.Fatalf("flask has %d dependencies, want 2", len(deps))
	}
	if deps[0].Key != "ghost" || deps[0].InstalledVersion != "?" || deps[0].RequiredVersion != "Any" {
		t.Errorf("missing dependency = %+v", deps[0])
	}
	if deps[1].Key != "werkzeug" || deps[1].RequiredVersion != ">=2.3.3" {
		t.Errorf("resolved dependency = %+v", deps[1])
	}

	if entries[1].Dependencies == nil || len(entries[1].Dependencies) != 0 {
		t.Errorf("leaf dependencies = %v, want present and empty", entries[1].Dependencies)
	}
}
