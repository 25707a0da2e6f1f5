package pkggraph

import "testing"

func TestIsConflicting(t *testing.T) {
	g, _ := Build([]RawPackage{
		{Name: "app", Version: "1.0", Requires: []RawRequirement{
			{Name: "old", Constraint: ">=2.0"},
			{Name: "ok", Constraint: ">=2.0"},
			{Name: "pinned", Constraint: "==1.0"},
			{Name: "ranged", Constraint: ">=1.0,<2.0"},
			{Name: "compat", Constraint: "~=1.4"},
			{Name: "loose", Constraint: ""},
			{Name: "ghost", Constraint: ">=1.0"},
			{Name: "badspec", Constraint: ">=>1.0"},
			{Name: "badver", Constraint: ">=1.0"},
		}},
		{Name: "old", Version: "1.0"},
		{Name: "ok", Version: "2.5"},
		{Name: "pinned", Version: "1.0"},
		{Name: "ranged", Version: "2.5"},
		{Name: "compat", Version: "1.4.9"},
		{Name: "loose", Version: "0.1"},
		{Name: "badspec", Version: "1.5"},
		{Name: "badver", Version: "not-a-version"},
	})

	want := map[string]bool{
		"old":     true,  // 1.0 fails >=2.0
		"ok":      false, // 2.5 satisfies >=2.0
		"pinned":  false, // exact pin matches
		"ranged":  true,  // 2.5 outside >=1.0,<2.0
		"compat":  false, // 1.4.9 within ~=1.4
		"loose":   false, // no constraint never conflicts
		"ghost":   false, // missing edges never conflict
		"badspec": true,  // unparseable constraint counts as conflicting
		"badver":  true,  // unparseable installed version counts as conflicting
	}

	for _, e := range g.Children("app") {
		if got := g.IsConflicting(e); got != want[e.Key()] {
			t.Errorf("IsConflicting(%s %q) = %v, want %v", e.Key(), e.Constraint(), got, want[e.Key()])
		}
	}
}

func TestTranslateConstraint(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{">=2.0", ">=2.0"},
		{"==1.4.2", "=1.4.2"},
		{"~=1.4", "~1.4"},
		{">=1.0,<2.0", ">=1.0, <2.0"},
		{"==1.0, !=1.0.1", "=1.0, !=1.0.1"},
	}
	for _, tt := range tests {
		if got := translateConstraint(tt.spec); got != tt.want {
			t.Errorf("translateConstraint(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}
