package reference

import (
	"os"
	"path/filepath"
	"testing"
)

const catalogYAML = `branches:
  - name: "Taekwondo"
    registrationRequired: true
    categories:
      - name: "Yıldız Erkek"
        weightClasses: ["33kg", "37kg", "41kg"]
  - name: "Satranç"
    categories:
      - name: "Küçük Karma"
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "branches.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	catalog, err := Load(writeCatalog(t, catalogYAML))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(catalog.Branches) != 2 {
		t.Fatalf("branches = %d, want 2", len(catalog.Branches))
	}

	branch, ok := catalog.Branch("Taekwondo")
	if !ok {
		t.Fatal("Taekwondo not found")
	}
	if !branch.RegistrationRequired {
		t.Error("Taekwondo should require registration numbers")
	}
	if len(branch.Categories) != 1 || len(branch.Categories[0].WeightClasses) != 3 {
		t.Errorf("unexpected categories: %+v", branch.Categories)
	}
}

func TestLoadEmptyCatalog(t *testing.T) {
	if _, err := Load(writeCatalog(t, "branches: []\n")); err == nil {
		t.Error("empty catalog should fail to load")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing file should fail to load")
	}
}

func TestRegistrationRequired(t *testing.T) {
	catalog, err := Load(writeCatalog(t, catalogYAML))
	if err != nil {
		t.Fatal(err)
	}

	if !catalog.RegistrationRequired("Taekwondo") {
		t.Error("Taekwondo should require a number")
	}
	if catalog.RegistrationRequired("Satranç") {
		t.Error("Satranç should not require a number")
	}
	// Unknown branches submitted by schools require no number.
	if catalog.RegistrationRequired("Korfbol") {
		t.Error("unknown branch should not require a number")
	}
}
