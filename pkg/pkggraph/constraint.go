package pkggraph

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// IsConflicting reports whether the edge's resolved target is installed at a
// version that fails the declared constraint. Missing edges and edges without
// a constraint never conflict. A constraint or installed version that cannot
// be evaluated counts as conflicting: satisfaction cannot be shown, and
// hiding bad metadata would defeat the point of the check.
func (g *DependencyGraph) IsConflicting(e *RequirementEdge) bool {
	if e.Missing() || e.constraint == "" {
		return false
	}
	c, err := semver.NewConstraint(translateConstraint(e.constraint))
	if err != nil {
		return true
	}
	v, err := semver.NewVersion(e.target.version)
	if err != nil {
		return true
	}
	return !c.Check(v)
}

// translateConstraint rewrites pip-style specifier operators into the syntax
// the semver library accepts. The raw string on the edge stays untouched for
// rendering.
func translateConstraint(spec string) string {
	parts := strings.Split(spec, ",")
	for i, p := range parts {
		p = strings.TrimSpace(p)
		switch {
		case strings.HasPrefix(p, "=="):
			p = "=" + strings.TrimPrefix(p, "==")
		case strings.HasPrefix(p, "~="):
			p = "~" + strings.TrimPrefix(p, "~=")
		}
		parts[i] = p
	}
	return strings.Join(parts, ", ")
}
