package extract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// gameDataCandidates returns the known default install locations for the
// game's data directory, in probe order.
func gameDataCandidates() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return []string{
		filepath.Join(home, "Library", "Application Support", "Steam", "steamapps",
			"common", "Old World", "OldWorld.app", "Contents", "Resources", "Data"),
		filepath.FromSlash("C:/Program Files (x86)/Steam/steamapps/common/Old World/OldWorld_Data"),
	}
}

// FindGameData auto-detects the game data directory. When no candidate
// exists the returned error names every location probed, since nothing
// can proceed without game data.
func FindGameData() (string, error) {
	candidates := gameDataCandidates()
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("could not find Old World game data; expected locations:\n  %s",
		strings.Join(candidates, "\n  "))
}

// ResolveGameData returns override if set (verifying it exists), falling
// back to auto-detection.
func ResolveGameData(override string) (string, error) {
	if override == "" {
		return FindGameData()
	}
	info, err := os.Stat(override)
	if err != nil {
		return "", fmt.Errorf("game data directory not found: %s", override)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("game data path is not a directory: %s", override)
	}
	return override, nil
}
