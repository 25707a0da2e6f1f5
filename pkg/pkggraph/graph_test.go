package pkggraph

import "testing"

func buildSample(t *testing.T) *DependencyGraph {
	t.Helper()
	g, diags := Build([]RawPackage{
		{Name: "beta", Version: "2.0", Requires: []RawRequirement{
			{Name: "gamma", Constraint: ">=3.0"},
		}},
		{Name: "alpha", Version: "1.0", Requires: []RawRequirement{
			{Name: "gamma", Constraint: ">=2.0"},
			{Name: "beta"},
		}},
		{Name: "gamma", Version: "3.1"},
	})
	if !diags.Empty() {
		t.Fatalf("diagnostics not empty: %+v", diags)
	}
	return g
}

func nodeKeys(nodes []*InstalledPackage) []string {
	keys := make([]string, len(nodes))
	for i, n := range nodes {
		keys[i] = n.Key()
	}
	return keys
}

func TestNodesPreserveInputOrder(t *testing.T) {
	g := buildSample(t)
	got := nodeKeys(g.Nodes())
	want := []string{"beta", "alpha", "gamma"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Nodes() order = %v, want %v", got, want)
		}
	}
}

func TestSorted(t *testing.T) {
	g := buildSample(t)

	asc := g.Sorted(false)
	got := nodeKeys(asc.Nodes())
	want := []string{"alpha", "beta", "gamma"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sorted(false) order = %v, want %v", got, want)
		}
	}

	edges := asc.Children("alpha")
	if edges[0].Key() != "beta" || edges[1].Key() != "gamma" {
		t.Errorf("sorted edges = [%s %s], want [beta gamma]", edges[0].Key(), edges[1].Key())
	}

	desc := g.Sorted(true)
	got = nodeKeys(desc.Nodes())
	want = []string{"gamma", "beta", "alpha"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sorted(true) order = %v, want %v", got, want)
		}
	}

	// Sorting an already-sorted graph changes nothing.
	again := nodeKeys(asc.Sorted(false).Nodes())
	for i := range got {
		if again[i] != nodeKeys(asc.Nodes())[i] {
			t.Fatalf("Sorted is not idempotent: %v", again)
		}
	}

	// The receiver stays untouched.
	if g.Nodes()[0].Key() != "beta" {
		t.Error("Sorted mutated the receiver's node order")
	}
}

func TestReversed(t *testing.T) {
	g := buildSample(t)
	r := g.Reversed()

	if r.Len() != g.Len() {
		t.Fatalf("reversed Len() = %d, want %d", r.Len(), g.Len())
	}

	parents := r.Children("gamma")
	if len(parents) != 2 {
		t.Fatalf("reversed Children(gamma) has %d edges, want 2", len(parents))
	}
	byKey := map[string]string{}
	for _, e := range parents {
		byKey[e.Key()] = e.Constraint()
		if e.Missing() {
			t.Errorf("reversed edge %s should resolve to the dependent", e.Key())
		}
	}
	if byKey["beta"] != ">=3.0" || byKey["alpha"] != ">=2.0" {
		t.Errorf("reversed edges carry wrong constraints: %v", byKey)
	}

	// gamma depends on nothing, so it has no children in the forward view and
	// alpha has none in the reversed view.
	if len(r.Children("alpha")) != 0 {
		t.Errorf("reversed Children(alpha) = %v, want none", r.Children("alpha"))
	}
}

func TestReversedExcludesMissing(t *testing.T) {
	g, _ := Build([]RawPackage{
		{Name: "a", Version: "1.0", Requires: []RawRequirement{{Name: "ghost"}}},
	})
	r := g.Reversed()
	if len(r.Children("ghost")) != 0 {
		t.Error("missing edges must not appear in the reversed view")
	}
}

func TestReversedRoundTrip(t *testing.T) {
	g := buildSample(t)
	back := g.Reversed().Reversed()

	for _, n := range g.Nodes() {
		want := map[string]string{}
		for _, e := range g.Children(n.Key()) {
			if !e.Missing() {
				want[e.Key()] = e.Constraint()
			}
		}
		got := map[string]string{}
		for _, e := range back.Children(n.Key()) {
			got[e.Key()] = e.Constraint()
		}
		if len(got) != len(want) {
			t.Fatalf("round-trip Children(%s) = %v, want %v", n.Key(), got, want)
		}
		for k, v := range want {
			if got[k] != v {
				t.Errorf("round-trip edge %s->%s constraint = %q, want %q", n.Key(), k, got[k], v)
			}
		}
	}
}

func TestParents(t *testing.T) {
	g := buildSample(t)
	parents := g.Parents("gamma")
	if len(parents) != 2 {
		t.Fatalf("Parents(gamma) has %d edges, want 2", len(parents))
	}
	if parents[0].Key() != "beta" || parents[1].Key() != "alpha" {
		t.Errorf("Parents order = [%s %s], want graph order [beta alpha]", parents[0].Key(), parents[1].Key())
	}
	if len(g.Parents("alpha")) != 0 {
		t.Error("Parents(alpha) should be empty, nothing depends on it")
	}
}
