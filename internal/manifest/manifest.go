// Package manifest builds and serializes the sprite catalog metadata
// consumed by the gallery.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the manifest document written at the output root.
const FileName = "manifest.json"

// Sprite describes one extracted image file.
type Sprite struct {
	ID       string `json:"id"` // category/name, unique
	Name     string `json:"name"`
	Category string `json:"category"`
	Path     string `json:"path"` // relative to the output root
	Thumb    string `json:"thumb,omitempty"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Size     int64  `json:"size"`
}

// Category is the display info and population of one category that
// actually holds files.
type Category struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// Manifest is the complete catalog for one extraction output tree. It is
// regenerated wholesale on every build, never patched.
type Manifest struct {
	GeneratedAt time.Time           `json:"generated_at"`
	BuildID     string              `json:"build_id"`
	Total       int                 `json:"total"`
	Categories  map[string]Category `json:"categories"`
	Sprites     []Sprite            `json:"sprites"`
}

// Write serializes the manifest to <root>/manifest.json.
func Write(root string, m *Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}

// Read loads <root>/manifest.json.
func Read(root string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(root, FileName))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
