package manifest

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/becked/pinacotheca/internal/category"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".bmp":  true,
	".tiff": true,
}

// Builder walks an extraction output tree and produces a Manifest.
type Builder struct {
	Root      string // output root containing sprites/
	ThumbSize int    // longest thumbnail edge in pixels; 0 disables thumbnails
	Logger    *log.Logger
}

// Build enumerates sprites/<category>/* and assembles the manifest.
// Categories present on disk but absent from the table get derived
// display info; images whose dimensions cannot be read are recorded as
// 0x0 with a warning. Only a missing sprites/ tree is fatal.
func (b *Builder) Build() (*Manifest, error) {
	logger := b.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	spritesDir := filepath.Join(b.Root, "sprites")
	catDirs, err := os.ReadDir(spritesDir)
	if err != nil {
		return nil, fmt.Errorf("sprites directory not found (run extraction first): %w", err)
	}

	m := &Manifest{
		GeneratedAt: time.Now().UTC(),
		BuildID:     uuid.NewString(),
		Categories:  make(map[string]Category),
	}

	for _, catDir := range catDirs {
		if !catDir.IsDir() {
			continue
		}
		cat := catDir.Name()
		files, err := os.ReadDir(filepath.Join(spritesDir, cat))
		if err != nil {
			logger.Warn("Skipping unreadable category folder", "category", cat, "error", err)
			continue
		}

		for _, file := range files {
			if file.IsDir() || !imageExts[strings.ToLower(filepath.Ext(file.Name()))] {
				continue
			}
			sprite, err := b.describe(cat, file.Name(), logger)
			if err != nil {
				logger.Warn("Skipping unreadable sprite", "file", file.Name(), "error", err)
				continue
			}
			m.Sprites = append(m.Sprites, sprite)
		}
	}

	// Deterministic output: category, then name
	sort.Slice(m.Sprites, func(i, j int) bool {
		if m.Sprites[i].Category != m.Sprites[j].Category {
			return m.Sprites[i].Category < m.Sprites[j].Category
		}
		return m.Sprites[i].Name < m.Sprites[j].Name
	})

	for _, s := range m.Sprites {
		entry, ok := m.Categories[s.Category]
		if !ok {
			d := category.DisplayFor(s.Category)
			entry = Category{Label: d.Label, Icon: d.Icon}
		}
		entry.Count++
		m.Categories[s.Category] = entry
	}
	m.Total = len(m.Sprites)

	logger.Info("Manifest built", "sprites", m.Total, "categories", len(m.Categories))
	return m, nil
}

// describe reads one image file's dimensions and byte size and generates
// its thumbnail when enabled.
func (b *Builder) describe(cat, fileName string, logger *log.Logger) (Sprite, error) {
	rel := filepath.ToSlash(filepath.Join("sprites", cat, fileName))
	full := filepath.Join(b.Root, "sprites", cat, fileName)

	info, err := os.Stat(full)
	if err != nil {
		return Sprite{}, fmt.Errorf("failed to stat: %w", err)
	}

	name := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	sprite := Sprite{
		ID:       cat + "/" + name,
		Name:     name,
		Category: cat,
		Path:     rel,
		Size:     info.Size(),
	}

	width, height, err := readDimensions(full)
	if err != nil {
		// Recorded with zero dimensions rather than dropped
		logger.Warn("Could not read image dimensions", "file", rel, "error", err)
		return sprite, nil
	}
	sprite.Width = width
	sprite.Height = height

	if b.ThumbSize > 0 && max(width, height) > b.ThumbSize {
		thumbRel := filepath.ToSlash(filepath.Join("thumbs", cat, name+".png"))
		if err := writeThumb(full, filepath.Join(b.Root, "thumbs", cat, name+".png"), b.ThumbSize); err != nil {
			logger.Warn("Could not generate thumbnail", "file", rel, "error", err)
		} else {
			sprite.Thumb = thumbRel
		}
	}

	return sprite, nil
}

func readDimensions(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
