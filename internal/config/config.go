// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvResourcesDir is the environment variable overriding the resources
// directory when no flag or config value is set.
const EnvResourcesDir = "CAREER_AGENT_RESOURCES"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	ResourcesDir string `json:"resources_dir,omitempty"` // Directory holding the reference data tables
	ProfilePath  string `json:"profile_path,omitempty"`  // Default path for the user profile file
	TopPaths     int    `json:"top_paths,omitempty"`     // Paths returned by the zero-match fallback
	Verbose      bool   `json:"verbose,omitempty"`       // Print detailed output
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.TopPaths < 0 {
		return fmt.Errorf("config error: 'top_paths' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults, then from the environment.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ResourcesDir == "" {
		result.ResourcesDir = defaults.ResourcesDir
	}
	if result.ResourcesDir == "" {
		result.ResourcesDir = os.Getenv(EnvResourcesDir)
	}
	if result.ResourcesDir == "" {
		result.ResourcesDir = "resources"
	}

	if result.ProfilePath == "" {
		result.ProfilePath = defaults.ProfilePath
	}
	if result.ProfilePath == "" {
		result.ProfilePath = "profile.json"
	}

	if result.TopPaths == 0 {
		result.TopPaths = defaults.TopPaths
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
