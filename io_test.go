package qjson

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFileSuccess(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.json")
	if err := os.WriteFile(path, []byte(`{"a":1}`), 0o644); err != nil {
		t.Fatalf("failed to write test fixture: %v", err)
	}

	v, err := ParseFile(path, AcceptAnyValue, BackendDefault)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind != KindObject || len(v.Obj) != 1 {
		t.Errorf("got %+v", v)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "missing.json"), AcceptAnyValue, BackendDefault)
	if err == nil {
		t.Fatalf("expected IOError for missing file")
	}
	if _, ok := err.(*IOError); !ok {
		t.Errorf("expected *IOError, got %T", err)
	}
}
