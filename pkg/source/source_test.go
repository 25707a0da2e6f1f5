package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pipgraph/pipgraph/pkg/errors"
)

const sampleJSON = `[
  {
    "name": "Flask",
    "version": "2.3.2",
    "license": "BSD-3-Clause",
    "requires": [
      {"name": "Werkzeug", "constraint": ">=2.3.3"},
      {"name": "click"}
    ]
  },
  {
    "name": "Werkzeug",
    "version": "2.3.7"
  }
]`

func TestLoad(t *testing.T) {
	records, err := Load(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	flask := records[0]
	if flask.Name != "Flask" || flask.Version != "2.3.2" || flask.License != "BSD-3-Clause" {
		t.Errorf("record = %+v", flask)
	}
	if len(flask.Requires) != 2 {
		t.Fatalf("got %d requirements, want 2", len(flask.Requires))
	}
	if flask.Requires[0].Name != "Werkzeug" || flask.Requires[0].Constraint != ">=2.3.3" {
		t.Errorf("requirement = %+v", flask.Requires[0])
	}
	if flask.Requires[1].Constraint != "" {
		t.Errorf("constraint = %q, want empty for unconstrained requirement", flask.Requires[1].Constraint)
	}
}

func TestLoadEmptyArray(t *testing.T) {
	records, err := Load(strings.NewReader("[]"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("Load() should fail on malformed input")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidInput {
		t.Errorf("error code = %v, want %v", code, errors.ErrCodeInvalidInput)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatal(err)
	}

	records, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("got %d records, want 2", len(records))
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("LoadFile() should fail on a missing file")
	}
	if code := errors.GetCode(err); code != errors.ErrCodeInvalidInput {
		t.Errorf("error code = %v, want %v", code, errors.ErrCodeInvalidInput)
	}
}
