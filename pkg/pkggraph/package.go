package pkggraph

import "strings"

// unknownVersion is the version string reported for missing packages.
const unknownVersion = "?"

// Package is the read-only capability shared by the two node variants:
// installed packages and requirement edges. It exposes the normalized
// identity used for lookup, the human-facing project name, and a version.
type Package interface {
	// Key returns the normalized package key used for identity and lookup.
	Key() string
	// ProjectName returns the package name as declared by its author.
	ProjectName() string
	// Version returns the installed version, or "?" when unknown.
	Version() string
	// Missing reports whether the package is absent from the environment.
	Missing() bool
}

// NormalizeKey canonicalizes a package name for identity comparisons.
// Names are lower-cased and runs of '-', '_' and '.' collapse to a single
// '-' so that "Foo_Bar", "foo.bar" and "FOO--BAR" all share one key.
func NormalizeKey(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	sep := false
	for _, r := range strings.ToLower(name) {
		if r == '-' || r == '_' || r == '.' {
			sep = true
			continue
		}
		if sep && b.Len() > 0 {
			b.WriteByte('-')
		}
		sep = false
		b.WriteRune(r)
	}
	return b.String()
}

// InstalledPackage represents a package present in the environment.
// Immutable once built.
type InstalledPackage struct {
	key     string
	name    string
	version string
	license string
}

// Key returns the normalized package key.
func (p *InstalledPackage) Key() string { return p.key }

// ProjectName returns the declared package name.
func (p *InstalledPackage) ProjectName() string { return p.name }

// Version returns the installed version.
func (p *InstalledPackage) Version() string { return p.version }

// Missing always reports false: an installed package is present by definition.
func (p *InstalledPackage) Missing() bool { return false }

// License returns the license identifier in parenthesized display form,
// e.g. "(MIT)", or "(Unknown license)" when the record carried none.
func (p *InstalledPackage) License() string {
	if p.license == "" {
		return "(Unknown license)"
	}
	return "(" + p.license + ")"
}

// RenderAsRoot formats the package for a top-level tree line ("name==version").
func (p *InstalledPackage) RenderAsRoot() string {
	return p.name + "==" + p.version
}

// RequirementEdge represents one package's declared dependency on another,
// as seen from the dependent's side. The edge carries the target's normalized
// key, the raw version constraint (empty meaning any version is acceptable),
// and the resolved installed package, which is nil when the requirement does
// not match any installed node.
type RequirementEdge struct {
	key        string
	name       string
	constraint string
	target     *InstalledPackage
}

// Key returns the normalized key of the requirement target.
func (e *RequirementEdge) Key() string { return e.key }

// ProjectName returns the target name as declared in the requirement.
func (e *RequirementEdge) ProjectName() string { return e.name }

// Version returns the resolved target's installed version, or "?" when the
// requirement is missing.
func (e *RequirementEdge) Version() string {
	if e.target == nil {
		return unknownVersion
	}
	return e.target.version
}

// Missing reports whether the requirement resolved to no installed package.
func (e *RequirementEdge) Missing() bool { return e.target == nil }

// Constraint returns the raw version constraint string, or "" for "any".
func (e *RequirementEdge) Constraint() string { return e.constraint }

// Target returns the resolved installed package, or nil when missing.
func (e *RequirementEdge) Target() *InstalledPackage { return e.target }

// ConstraintOrAny returns the constraint string, substituting "Any" when the
// requirement accepts every version.
func (e *RequirementEdge) ConstraintOrAny() string {
	if e.constraint == "" {
		return "Any"
	}
	return e.constraint
}

// RenderAsBranch formats the edge for a nested tree line.
// Frozen mode produces a pip-freeze style exact pin of the installed target.
func (e *RequirementEdge) RenderAsBranch(frozen bool) string {
	if frozen {
		return e.name + "==" + e.Version()
	}
	return e.name + " [required: " + e.ConstraintOrAny() + ", installed: " + e.Version() + "]"
}
