// catalog.go
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// InterviewMode describes one selectable interview format.
type InterviewMode struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Icon        string   `yaml:"icon" json:"icon"`
	Features    []string `yaml:"features" json:"features"`
}

// RoleCategory groups the selectable target roles.
type RoleCategory struct {
	Name  string   `yaml:"name" json:"name"`
	Roles []string `yaml:"roles" json:"roles"`
}

// Catalog holds the interview configuration data: difficulties, role
// categories and interview modes.
type Catalog struct {
	Difficulties   []string        `yaml:"difficulties" json:"difficulties"`
	RoleCategories []RoleCategory  `yaml:"role_categories" json:"roleCategories"`
	Modes          []InterviewMode `yaml:"modes" json:"modes"`
}

// LoadCatalog reads and parses the catalog YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog YAML: %w", err)
	}

	return &catalog, nil
}
