package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"strings"
)

// ExcludeFile is the optional patterns file consulted next to the
// working directory. It holds regex patterns for sprite names to skip,
// one per line or pipe-separated; lines starting with # are comments.
const ExcludeFile = ".exclude-patterns"

// LoadExcludePatterns combines the patterns file at path (if present)
// with extra patterns from configuration into a single case-insensitive
// expression. Returns nil when there is nothing to exclude.
func LoadExcludePatterns(path string, extra []string) (*regexp.Regexp, error) {
	var patterns []string

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			for _, p := range strings.Split(line, "|") {
				if p = strings.TrimSpace(p); p != "" {
					patterns = append(patterns, p)
				}
			}
		}
	}

	for _, p := range extra {
		if p = strings.TrimSpace(p); p != "" {
			patterns = append(patterns, p)
		}
	}

	if len(patterns) == 0 {
		return nil, nil
	}

	re, err := regexp.Compile(`(?i)` + strings.Join(patterns, "|"))
	if err != nil {
		return nil, fmt.Errorf("invalid exclusion pattern: %w", err)
	}
	return re, nil
}
