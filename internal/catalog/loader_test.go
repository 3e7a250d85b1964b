package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	col, err := Default()
	if err != nil {
		t.Fatalf("default: %v", err)
	}
	for _, name := range Categories() {
		items, err := col.Category(name)
		if err != nil {
			t.Fatalf("category %s: %v", name, err)
		}
		if len(items) == 0 {
			t.Fatalf("embedded catalog has no %s", name)
		}
		for _, item := range items {
			if item.ID == "" || item.Name == "" {
				t.Fatalf("%s entry missing id/name: %+v", name, item)
			}
		}
	}
	if f := col.Lookup(CategoryFrames, "frame-hex650"); f == nil || f.MaxAuwG <= 0 {
		t.Fatalf("frame-hex650 not usable: %+v", f)
	}
}

func TestLoadJSONAndYAML(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(jsonPath, []byte(`{"frames":[{"id":"f1","name":"F1","mass_g":100}]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	col, err := Load(jsonPath)
	if err != nil {
		t.Fatalf("load json: %v", err)
	}
	if len(col.Frames) != 1 || col.Frames[0].MassG != 100 {
		t.Fatalf("json frames: %+v", col.Frames)
	}

	yamlPath := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(yamlPath, []byte("batteries:\n  - id: b1\n    name: B1\n    cells: 6\n    capacity_mah: 1300\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	col, err = Load(yamlPath)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if len(col.Batteries) != 1 || col.Batteries[0].Cells != 6 {
		t.Fatalf("yaml batteries: %+v", col.Batteries)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	badPath := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(badPath, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(badPath); err == nil {
		t.Fatalf("expected parse error")
	}
}
