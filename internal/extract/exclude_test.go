package extract_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/becked/pinacotheca/internal/extract"
)

func TestLoadExcludePatterns(t *testing.T) {
	path := filepath.Join(t.TempDir(), extract.ExcludeFile)
	content := "# skip placeholder art\n^PLACEHOLDER_\n\n^DEBUG_|^TEST_\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	re, err := extract.LoadExcludePatterns(path, nil)
	if err != nil {
		t.Fatalf("LoadExcludePatterns() error = %v", err)
	}
	if re == nil {
		t.Fatal("LoadExcludePatterns() returned nil pattern")
	}

	tests := []struct {
		name string
		want bool
	}{
		{"PLACEHOLDER_ICON", true},
		{"placeholder_icon", true}, // case-insensitive
		{"DEBUG_GRID", true},
		{"TEST_SPRITE", true},
		{"CREST_ROME", false},
	}
	for _, tt := range tests {
		if got := re.MatchString(tt.name); got != tt.want {
			t.Errorf("MatchString(%q) = %v; want %v", tt.name, got, tt.want)
		}
	}
}

func TestLoadExcludePatternsMissingFile(t *testing.T) {
	re, err := extract.LoadExcludePatterns(filepath.Join(t.TempDir(), extract.ExcludeFile), nil)
	if err != nil {
		t.Fatalf("LoadExcludePatterns() error = %v", err)
	}
	if re != nil {
		t.Errorf("LoadExcludePatterns() = %v; want nil for missing file", re)
	}
}

func TestLoadExcludePatternsConfigOnly(t *testing.T) {
	re, err := extract.LoadExcludePatterns(
		filepath.Join(t.TempDir(), extract.ExcludeFile),
		[]string{"^WIP_"},
	)
	if err != nil {
		t.Fatalf("LoadExcludePatterns() error = %v", err)
	}
	if re == nil || !re.MatchString("WIP_TOWER") {
		t.Error("config-supplied pattern not applied")
	}
}

func TestLoadExcludePatternsInvalid(t *testing.T) {
	_, err := extract.LoadExcludePatterns(
		filepath.Join(t.TempDir(), extract.ExcludeFile),
		[]string{"(unclosed"},
	)
	if err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestResolveGameDataOverride(t *testing.T) {
	dir := t.TempDir()
	got, err := extract.ResolveGameData(dir)
	if err != nil {
		t.Fatalf("ResolveGameData() error = %v", err)
	}
	if got != dir {
		t.Errorf("ResolveGameData() = %q; want %q", got, dir)
	}

	if _, err := extract.ResolveGameData(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for nonexistent override")
	}
}
