package render

import (
	"encoding/json"

	"github.com/pipgraph/pipgraph/pkg/pkggraph"
)

type flatPackage struct {
	Key              string `json:"key"`
	PackageName      string `json:"package_name"`
	InstalledVersion string `json:"installed_version"`
}

type flatDependency struct {
	Key              string `json:"key"`
	PackageName      string `json:"package_name"`
	InstalledVersion string `json:"installed_version"`
	RequiredVersion  string `json:"required_version"`
}

type flatEntry struct {
	Package      flatPackage      `json:"package"`
	Dependencies []flatDependency `json:"dependencies"`
}

// JSONFlat renders every package as one object with a single level of
// dependency objects, in normalized-key order. Unlike the nested form,
// per-edge constraints are preserved in required_version.
func JSONFlat(g *pkggraph.DependencyGraph) (string, error) {
	sorted := g.Sorted(false)

	entries := make([]flatEntry, 0, sorted.Len())
	for _, n := range sorted.Nodes() {
		entry := flatEntry{
			Package: flatPackage{
				Key:              n.Key(),
				PackageName:      n.ProjectName(),
				InstalledVersion: n.Version(),
			},
			Dependencies: []flatDependency{},
		}
		for _, e := range sorted.Children(n.Key()) {
			entry.Dependencies = append(entry.Dependencies, flatDependency{
				Key:              e.Key(),
				PackageName:      e.ProjectName(),
				InstalledVersion: e.Version(),
				RequiredVersion:  e.ConstraintOrAny(),
			})
		}
		entries = append(entries, entry)
	}

	out, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
