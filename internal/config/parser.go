package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadProjectConfig loads the project configuration file (buildenv.yaml) from dir.
// Returns a ProjectConfig pre-populated with defaults. If the file exists,
// YAML values override the defaults. If the file doesn't exist, returns defaults without error.
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	return loadProjectConfigFromPath(filepath.Join(dir, ProjectFileName), false)
}

// LoadProjectConfigFromPath loads a project configuration from an explicit path.
// Unlike LoadProjectConfig, a missing file is an error.
func LoadProjectConfigFromPath(path string) (*ProjectConfig, error) {
	return loadProjectConfigFromPath(path, true)
}

func loadProjectConfigFromPath(path string, mustExist bool) (*ProjectConfig, error) {
	// Start with built-in defaults
	projectConfig := NewProjectConfigWithDefaults()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mustExist {
			return nil, fmt.Errorf("project config file not found: %s", path)
		}
		return &projectConfig, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project config file %s: %w", path, err)
	}

	// Unmarshal into pre-populated struct - only overrides present fields
	if err := yaml.Unmarshal(data, &projectConfig); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in project config %s: %w", path, err)
	}

	if err := ValidateProjectConfig(&projectConfig); err != nil {
		return nil, fmt.Errorf("invalid project configuration in %s: %w", path, err)
	}

	return &projectConfig, nil
}
