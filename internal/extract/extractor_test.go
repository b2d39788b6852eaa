package extract_test

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/becked/pinacotheca/internal/extract"
)

// fakeDumper stands in for the UnityPy bridge by writing named PNGs of
// the given sizes into the dump directory.
type fakeDumper map[string]image.Point

func (d fakeDumper) Dump(_ context.Context, _ string, outDir string) error {
	for name, size := range d {
		if err := writePNG(filepath.Join(outDir, name+".png"), size.X, size.Y); err != nil {
			return err
		}
	}
	return nil
}

func writePNG(path string, w, h int) error {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}

func TestExtractorRun(t *testing.T) {
	out := t.TempDir()
	e := &extract.Extractor{
		Output: out,
		Dumper: fakeDumper{
			"CREST_ROME":          {X: 16, Y: 16},
			"UNIT_ACTION_FORTIFY": {X: 32, Y: 32},
			"ROME_MALE_01":        {X: 64, Y: 64},
			"XYZZY_PLUGH":         {X: 8, Y: 8},
			"UNTITLED_SPLASH":     {X: 1024, Y: 4},
		},
	}

	summary, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	wantFiles := map[string]string{
		"crests":       "CREST_ROME.png",
		"unit_actions": "UNIT_ACTION_FORTIFY.png",
		"portraits":    "ROME_MALE_01.png",
		"other":        "XYZZY_PLUGH.png",
		// Large uncategorized sprites are promoted to backgrounds
		"backgrounds": "UNTITLED_SPLASH.png",
	}
	for cat, file := range wantFiles {
		path := filepath.Join(out, "sprites", cat, file)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s/%s to exist: %v", cat, file, err)
		}
		if summary.Extracted[cat] != 1 {
			t.Errorf("Extracted[%s] = %d; want 1", cat, summary.Extracted[cat])
		}
	}
	if summary.Total() != 5 {
		t.Errorf("Total() = %d; want 5", summary.Total())
	}
	if summary.Errors != 0 || summary.Excluded != 0 || summary.Skipped != 0 {
		t.Errorf("unexpected counts in summary: %+v", summary)
	}
}

func TestExtractorExclusion(t *testing.T) {
	out := t.TempDir()
	e := &extract.Extractor{
		Output:  out,
		Exclude: regexp.MustCompile(`(?i)^CREST_`),
		Dumper: fakeDumper{
			"CREST_ROME":    {X: 16, Y: 16},
			"RESOURCE_IRON": {X: 16, Y: 16},
		},
	}

	summary, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.Excluded != 1 {
		t.Errorf("Excluded = %d; want 1", summary.Excluded)
	}
	if _, err := os.Stat(filepath.Join(out, "sprites", "crests", "CREST_ROME.png")); err == nil {
		t.Error("excluded sprite was written")
	}
	if _, err := os.Stat(filepath.Join(out, "sprites", "resources", "RESOURCE_IRON.png")); err != nil {
		t.Errorf("non-excluded sprite missing: %v", err)
	}
}

func TestExtractorSkipsExisting(t *testing.T) {
	out := t.TempDir()
	dest := filepath.Join(out, "sprites", "crests")
	if err := os.MkdirAll(dest, 0o755); err != nil {
		t.Fatal(err)
	}
	existing := filepath.Join(dest, "CREST_ROME.png")
	if err := os.WriteFile(existing, []byte("sentinel"), 0o644); err != nil {
		t.Fatal(err)
	}

	e := &extract.Extractor{
		Output: out,
		Dumper: fakeDumper{"CREST_ROME": {X: 16, Y: 16}},
	}
	summary, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.Skipped != 1 {
		t.Errorf("Skipped = %d; want 1", summary.Skipped)
	}
	data, err := os.ReadFile(existing)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "sentinel" {
		t.Error("existing file was overwritten")
	}
}

func TestExtractorRemovesStaleCategories(t *testing.T) {
	out := t.TempDir()
	stale := filepath.Join(out, "sprites", "old_category")
	if err := os.MkdirAll(stale, 0o755); err != nil {
		t.Fatal(err)
	}

	e := &extract.Extractor{Output: out, Dumper: fakeDumper{}}
	if _, err := e.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale category folder was not removed")
	}
	if _, err := os.Stat(filepath.Join(out, "sprites", "crests")); err != nil {
		t.Errorf("declared category folder missing: %v", err)
	}
}

// badDumper writes a file that is not a decodable image.
type badDumper struct{}

func (badDumper) Dump(_ context.Context, _ string, outDir string) error {
	return os.WriteFile(filepath.Join(outDir, "BROKEN.png"), []byte("not an image"), 0o644)
}

func TestExtractorCountsUndecodable(t *testing.T) {
	out := t.TempDir()
	e := &extract.Extractor{Output: out, Dumper: badDumper{}}

	summary, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if summary.Errors != 1 {
		t.Errorf("Errors = %d; want 1", summary.Errors)
	}
	if summary.Total() != 0 {
		t.Errorf("Total() = %d; want 0", summary.Total())
	}
}
