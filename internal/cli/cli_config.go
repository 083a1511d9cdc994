package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nauticalab/buildenv/internal/plan"
	"gopkg.in/yaml.v3"
)

// CLIConfig represents the user-level defaults for the CLI
type CLIConfig struct {
	Mode   string `yaml:"mode"`
	Output string `yaml:"output"`
}

// LoadCLIConfig loads configuration from multiple sources in order of precedence:
// 1. Flags (handled by caller)
// 2. Environment variables (BUILDENV_MODE, BUILDENV_OUTPUT)
// 3. Config file (~/.buildenv/config.yaml)
func LoadCLIConfig() (*CLIConfig, error) {
	homeDir, _ := os.UserHomeDir()
	return LoadCLIConfigFrom(homeDir, os.LookupEnv)
}

// LoadCLIConfigFrom is LoadCLIConfig with an explicit home directory and
// environment lookup.
func LoadCLIConfigFrom(homeDir string, lookupEnv func(string) (string, bool)) (*CLIConfig, error) {
	config := &CLIConfig{
		Mode:   plan.ModeProduction,
		Output: FormatText,
	}

	// 1. Load from config file
	if homeDir != "" {
		configPath := filepath.Join(homeDir, ".buildenv", "config.yaml")
		if data, err := os.ReadFile(configPath); err == nil {
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
			}
		}
	}

	// 2. Load from environment variables (override config file)
	if mode, ok := lookupEnv("BUILDENV_MODE"); ok && mode != "" {
		config.Mode = mode
	}
	if output, ok := lookupEnv("BUILDENV_OUTPUT"); ok && output != "" {
		config.Output = output
	}

	return config, nil
}
