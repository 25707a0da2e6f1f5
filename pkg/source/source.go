// Package source loads installed-package records for graph construction.
//
// The supported input is a JSON array of package objects, the shape emitted
// by environment inspection tooling:
//
//	[
//	  {
//	    "name": "flask",
//	    "version": "2.3.2",
//	    "license": "BSD-3-Clause",
//	    "requires": [
//	      {"name": "werkzeug", "constraint": ">=2.3.3"},
//	      {"name": "click", "constraint": ">=8.1.3"}
//	    ]
//	  }
//	]
//
// Discovery itself (querying an interpreter or walking site directories) is
// out of scope; whatever produced the records, this package only decodes
// them. Malformed individual records are not rejected here: the graph
// builder drops and reports them, so one bad entry never hides the rest.
package source

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pipgraph/pipgraph/pkg/errors"
	"github.com/pipgraph/pipgraph/pkg/pkggraph"
)

type requirement struct {
	Name       string `json:"name"`
	Constraint string `json:"constraint,omitempty"`
}

type record struct {
	Name     string        `json:"name"`
	Version  string        `json:"version"`
	License  string        `json:"license,omitempty"`
	Requires []requirement `json:"requires,omitempty"`
}

// Load decodes a JSON array of package records from r.
func Load(r io.Reader) ([]pkggraph.RawPackage, error) {
	var records []record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode package records")
	}

	out := make([]pkggraph.RawPackage, 0, len(records))
	for _, rec := range records {
		raw := pkggraph.RawPackage{
			Name:    rec.Name,
			Version: rec.Version,
			License: rec.License,
		}
		for _, req := range rec.Requires {
			raw.Requires = append(raw.Requires, pkggraph.RawRequirement{
				Name:       req.Name,
				Constraint: req.Constraint,
			})
		}
		out = append(out, raw)
	}
	return out, nil
}

// LoadFile decodes package records from the JSON file at path.
func LoadFile(path string) ([]pkggraph.RawPackage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "open %s", path)
	}
	defer f.Close()
	return Load(f)
}
