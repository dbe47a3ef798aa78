package schema

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCatalogFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data := []byte(`attributes:
  - name: CentralAir
    levels:
      - code: N
        ordinal: 0
      - code: Y
        ordinal: 1
    default: Y
  - name: PavedDrive
    levels:
      - code: N
        ordinal: 0
      - code: P
        ordinal: 1
      - code: Y
        ordinal: 2
    default: Y
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadCatalogFromYAML(path)
	if err != nil {
		t.Fatalf("LoadCatalogFromYAML() error = %v", err)
	}
	if got := len(catalog.Names()); got != 2 {
		t.Fatalf("expected 2 attributes, got %d", got)
	}
	if ord, ok := catalog.Ordinal("PavedDrive", "P"); !ok || ord != 1 {
		t.Errorf("Ordinal(PavedDrive, P) = (%v, %v)", ord, ok)
	}
	if ord, ok := catalog.DefaultOrdinal("CentralAir"); !ok || ord != 1 {
		t.Errorf("DefaultOrdinal(CentralAir) = (%v, %v)", ord, ok)
	}
}

func TestLoadCatalogFromJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	data := []byte(`{
	  "attributes": [
	    {
	      "name": "CentralAir",
	      "levels": [{"code": "N", "ordinal": 0}, {"code": "Y", "ordinal": 1}],
	      "default": "Y"
	    }
	  ]
	}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadCatalogFromJSON(path)
	if err != nil {
		t.Fatalf("LoadCatalogFromJSON() error = %v", err)
	}
	if !catalog.IsCategorical("CentralAir") {
		t.Error("expected CentralAir to be categorical")
	}
}
