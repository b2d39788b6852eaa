// Package config loads the optional pinacotheca.yml configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in the working directory.
const FileName = "pinacotheca.yml"

// Config represents the pinacotheca configuration file. Every field is
// optional; command-line flags take precedence over configured values.
type Config struct {
	// GameData overrides game data auto-detection.
	GameData string `yaml:"game_data,omitempty"`
	// Output is the extraction output directory (default ./extracted).
	Output string `yaml:"output,omitempty"`
	// Exclude lists regex patterns for sprite names to skip, merged with
	// the .exclude-patterns file if one exists.
	Exclude []string `yaml:"exclude,omitempty"`
	// ThumbSize is the longest edge of generated thumbnails in pixels.
	ThumbSize int `yaml:"thumb_size,omitempty"`
	// Branch is the deploy target branch (default gh-pages).
	Branch string `yaml:"branch,omitempty"`
}

// Defaults returns the built-in configuration values.
func Defaults() Config {
	return Config{
		Output:    "extracted",
		ThumbSize: 160,
		Branch:    "gh-pages",
	}
}

// Load reads the configuration file at path and merges it over the
// defaults. A missing file is not an error: defaults are returned.
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if file.GameData != "" {
		cfg.GameData = file.GameData
	}
	if file.Output != "" {
		cfg.Output = file.Output
	}
	if len(file.Exclude) > 0 {
		cfg.Exclude = file.Exclude
	}
	if file.ThumbSize > 0 {
		cfg.ThumbSize = file.ThumbSize
	}
	if file.Branch != "" {
		cfg.Branch = file.Branch
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
