// Package extract drives sprite extraction: it has the external bundle
// parser dump decoded sprites, classifies each by name, and files the
// images into category-partitioned output folders.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"runtime/debug"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/becked/pinacotheca/internal/category"

	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// flushEvery is the cadence, in processed objects, for progress logging
// and forced memory reclamation.
const flushEvery = 500

// Dumper produces one decoded image file per sprite object in gameData.
type Dumper interface {
	Dump(ctx context.Context, gameData, outDir string) error
}

// DumperFunc adapts a function to the Dumper interface.
type DumperFunc func(ctx context.Context, gameData, outDir string) error

func (f DumperFunc) Dump(ctx context.Context, gameData, outDir string) error {
	return f(ctx, gameData, outDir)
}

// Summary reports the outcome of one extraction run.
type Summary struct {
	Found     int            // sprite objects seen
	Extracted map[string]int // written files per category
	Excluded  int            // skipped by exclusion pattern
	Skipped   int            // output file already existed
	Errors    int            // undecodable or unwritable objects
}

// Total returns the number of files written across all categories.
func (s *Summary) Total() int {
	n := 0
	for _, c := range s.Extracted {
		n += c
	}
	return n
}

// Extractor runs one extraction pass. Bundle parsing is delegated to
// Dumper; everything else (classification, placement, bookkeeping) is
// handled here, strictly sequentially.
type Extractor struct {
	GameData string
	Output   string // output root; sprites land in Output/sprites
	Exclude  *regexp.Regexp
	Dumper   Dumper
	Logger   *log.Logger
}

// Run extracts all sprites. Individual object failures are logged and
// counted without aborting the run; only a failed dump is fatal.
func (e *Extractor) Run(ctx context.Context) (*Summary, error) {
	logger := e.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	spritesDir := filepath.Join(e.Output, "sprites")
	for _, id := range category.IDs() {
		if err := os.MkdirAll(filepath.Join(spritesDir, id), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create category folder: %w", err)
		}
	}
	if err := removeStaleCategories(spritesDir, logger); err != nil {
		return nil, err
	}

	dumpDir, err := os.MkdirTemp("", "pinacotheca-dump-")
	if err != nil {
		return nil, fmt.Errorf("failed to create dump directory: %w", err)
	}
	defer os.RemoveAll(dumpDir)

	logger.Info("Loading asset index", "game_data", e.GameData)
	if err := e.Dumper.Dump(ctx, e.GameData, dumpDir); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dumpDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read dump directory: %w", err)
	}

	summary := &Summary{Extracted: make(map[string]int)}
	logger.Info("Extracting sprites", "found", len(entries))

	for i, entry := range entries {
		if entry.IsDir() {
			continue
		}
		summary.Found++
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))

		if e.Exclude != nil && e.Exclude.MatchString(name) {
			summary.Excluded++
		} else if err := e.place(filepath.Join(dumpDir, entry.Name()), name, summary); err != nil {
			logger.Warn("Skipping sprite", "name", name, "error", err)
			summary.Errors++
		}

		// Decoded buffers from this batch are dead by now; hand the
		// memory back so peak usage stays bounded over thousands of
		// objects.
		if (i+1)%flushEvery == 0 {
			debug.FreeOSMemory()
			logger.Info("Progress", "processed", i+1, "total", len(entries), "extracted", summary.Total())
		}
	}

	logExtractionSummary(logger, summary, spritesDir)
	return summary, nil
}

// place classifies one dumped sprite and writes it under its category
// folder, re-encoding to PNG when the dump produced another format.
func (e *Extractor) place(src, name string, summary *Summary) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read dumped sprite: %w", err)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to decode: %w", err)
	}

	cat := category.Classify(name)
	// Large uncategorized images are backgrounds
	if cat == category.Other && cfg.Width >= 1024 {
		cat = category.Backgrounds
	}

	dest := filepath.Join(e.Output, "sprites", cat, name+".png")
	if _, err := os.Stat(dest); err == nil {
		summary.Skipped++
		return nil
	}

	if format == "png" {
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return fmt.Errorf("failed to write sprite: %w", err)
		}
	} else {
		img, _, err := image.Decode(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("failed to decode %s image: %w", format, err)
		}
		if err := writePNG(dest, img); err != nil {
			return err
		}
	}

	summary.Extracted[cat]++
	return nil
}

// removeStaleCategories deletes sprites/ subdirectories left over from
// extractions with a different category table.
func removeStaleCategories(spritesDir string, logger *log.Logger) error {
	entries, err := os.ReadDir(spritesDir)
	if err != nil {
		return fmt.Errorf("failed to read sprites directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() && !category.Known(entry.Name()) {
			logger.Info("Removing stale category folder", "category", entry.Name())
			if err := os.RemoveAll(filepath.Join(spritesDir, entry.Name())); err != nil {
				return fmt.Errorf("failed to remove stale folder: %w", err)
			}
		}
	}
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create sprite file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode sprite: %w", err)
	}
	return f.Close()
}

func logExtractionSummary(logger *log.Logger, s *Summary, spritesDir string) {
	logger.Info("Extraction complete",
		"extracted", s.Total(),
		"excluded", s.Excluded,
		"skipped", s.Skipped,
		"errors", s.Errors,
		"output", spritesDir,
	)
	for _, id := range category.IDs() {
		if n := s.Extracted[id]; n > 0 {
			logger.Info("Category", "id", id, "count", n)
		}
	}
}
