// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Corpus inputs
	Chunks         string `json:"chunks,omitempty"`          // Path to chunks JSONL file
	Metadata       string `json:"metadata,omitempty"`        // Path to document metadata JSON file
	CategorySchema string `json:"category_schema,omitempty"` // Path to category schema JSON file

	// Outputs
	OutputDir string `json:"output_dir,omitempty"` // Directory for report artifacts

	// Behavior
	Verbose        bool    `json:"verbose,omitempty"`         // Print detailed debug information
	SkipValidation bool    `json:"skip_validation,omitempty"` // Skip JSON Schema validation of inputs
	Workers        int     `json:"workers,omitempty"`         // Parallel document audits (0 = NumCPU)
	GapThreshold   float64 `json:"gap_threshold,omitempty"`   // Framework-vs-artifact gap significance cutoff (0.0-1.0)
	DatabaseURL    string  `json:"database_url,omitempty"`    // PostgreSQL connection URL for run persistence
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.GapThreshold < 0 || c.GapThreshold > 1 {
		return fmt.Errorf("config error: 'gap_threshold' must be between 0.0 and 1.0")
	}

	// Validate file paths exist (if specified)
	if c.Chunks != "" {
		if _, err := os.Stat(c.Chunks); os.IsNotExist(err) {
			return fmt.Errorf("config error: chunks file not found: %s", c.Chunks)
		}
	}
	if c.Metadata != "" {
		if _, err := os.Stat(c.Metadata); os.IsNotExist(err) {
			return fmt.Errorf("config error: metadata file not found: %s", c.Metadata)
		}
	}
	if c.CategorySchema != "" {
		if _, err := os.Stat(c.CategorySchema); os.IsNotExist(err) {
			return fmt.Errorf("config error: category schema file not found: %s", c.CategorySchema)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Chunks == "" {
		result.Chunks = defaults.Chunks
	}
	if result.Metadata == "" {
		result.Metadata = defaults.Metadata
	}
	if result.CategorySchema == "" {
		result.CategorySchema = defaults.CategorySchema
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}

	// Float fields
	if result.GapThreshold == 0 {
		if defaults.GapThreshold > 0 {
			result.GapThreshold = defaults.GapThreshold
		} else {
			result.GapThreshold = 0.3 // Default significant-gap cutoff
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
