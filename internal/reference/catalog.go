// Package reference holds the fixed sport-branch catalog: branches, their
// age categories, optional weight classes and the federation
// registration-number requirement. The catalog is loaded once at startup
// from a YAML file and passed by reference into the validators and
// controllers that need it; it is never embedded in handler code.
package reference

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AgeCategory is one age bracket of a branch
type AgeCategory struct {
	Name          string   `yaml:"name" json:"name"`
	WeightClasses []string `yaml:"weightClasses,omitempty" json:"weightClasses,omitempty"`
}

// Branch is one competitive discipline
type Branch struct {
	Name string `yaml:"name" json:"name"`
	// RegistrationRequired marks branches whose students must carry a
	// federation registration number (sicil numarası).
	RegistrationRequired bool          `yaml:"registrationRequired" json:"registrationRequired"`
	Categories           []AgeCategory `yaml:"categories" json:"categories"`
}

// Catalog is the full branch catalog
type Catalog struct {
	Branches []Branch `yaml:"branches" json:"branches"`
}

// Load reads the catalog from a YAML file
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read branch catalog: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse branch catalog: %w", err)
	}

	if len(catalog.Branches) == 0 {
		return nil, fmt.Errorf("branch catalog is empty: %s", path)
	}

	return &catalog, nil
}

// Branch returns the branch with the given name, if present
func (c *Catalog) Branch(name string) (*Branch, bool) {
	for i := range c.Branches {
		if c.Branches[i].Name == name {
			return &c.Branches[i], true
		}
	}
	return nil, false
}

// RegistrationRequired reports whether students of the given branch must
// carry a federation registration number. Unknown branches require none:
// submitted branch names are otherwise not validated against the catalog.
func (c *Catalog) RegistrationRequired(branchName string) bool {
	branch, ok := c.Branch(branchName)
	return ok && branch.RegistrationRequired
}
