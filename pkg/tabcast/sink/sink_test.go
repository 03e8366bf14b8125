package sink

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDirCreate(t *testing.T) {
	dir := t.TempDir()
	d := NewDir(dir)

	if err := d.Create("out-001.csv", "a;b\nc;d"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "out-001.csv"))
	if err != nil {
		t.Fatalf("Reading created file failed: %v", err)
	}
	if string(data) != "a;b\nc;d" {
		t.Errorf("Unexpected file content: %q", string(data))
	}
}

func TestDirCreateRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	d := NewDir(dir)

	if err := d.Create("out.csv", "first"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := d.Create("out.csv", "second"); err == nil {
		t.Fatal("Expected error when the file already exists")
	}

	data, _ := os.ReadFile(filepath.Join(dir, "out.csv"))
	if string(data) != "first" {
		t.Errorf("Existing file must be untouched, got %q", string(data))
	}
}

func TestDirCreateMissingRoot(t *testing.T) {
	d := NewDir(filepath.Join(t.TempDir(), "missing"))
	if err := d.Create("out.csv", "x"); err == nil {
		t.Error("Expected error when the root directory does not exist")
	}
}
