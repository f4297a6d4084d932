package discovery

import (
	"path/filepath"
	"strings"
)

// Filter narrows scanned files by base-name pattern.
type Filter struct{}

// NewFilter creates a new Filter.
func NewFilter() *Filter {
	return &Filter{}
}

// ByName keeps the files whose base name matches the pattern. Patterns use
// * and ? wildcards ("Login*.csv", "*smoke*"); a pattern without wildcards
// matches as a substring.
func (f *Filter) ByName(files []string, pattern string) []string {
	if pattern == "" {
		return files
	}

	var filtered []string
	for _, file := range files {
		if matchName(filepath.Base(file), pattern) {
			filtered = append(filtered, file)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}
	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}
	if !strings.Contains(pattern, "*") {
		return false
	}

	// Loose fallback so "*smoke*regression*" style patterns match their
	// literal parts anywhere in the name.
	if strings.Trim(pattern, "*") == "" {
		return false
	}
	for _, part := range strings.Split(pattern, "*") {
		if part != "" && !strings.Contains(name, part) {
			return false
		}
	}
	return true
}
