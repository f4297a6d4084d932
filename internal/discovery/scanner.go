// Package discovery finds convertible files for batch conversion.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// convertibleExts are the extensions the converter can read.
var convertibleExts = map[string]bool{
	".csv":   true,
	".xmind": true,
	".xml":   true,
}

// Convertible reports whether the file name has a convertible extension.
func Convertible(name string) bool {
	return convertibleExts[strings.ToLower(filepath.Ext(name))]
}

// Scanner scans a directory tree for convertible files.
type Scanner struct {
	skipDirs map[string]bool
}

// NewScanner creates a Scanner with the given directory names to skip.
func NewScanner(skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{skipDirs: skipMap}
}

// Scan finds all convertible files under the given root directory.
func (s *Scanner) Scan(root string) ([]string, error) {
	return s.walk(root, func(string) bool { return true })
}

// Glob finds the convertible files under root whose slash-separated
// relative path matches a doublestar pattern like "regression/**/*.csv".
func (s *Scanner) Glob(root, pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
	}
	return s.walk(root, func(rel string) bool {
		matched, err := doublestar.Match(pattern, rel)
		return err == nil && matched
	})
}

func (s *Scanner) walk(root string, keep func(rel string) bool) ([]string, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("input path does not exist: %s", root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input path is not a directory: %s", root)
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			// Skip hidden directories (starting with .)
			if strings.HasPrefix(name, ".") && name != "." && name != ".." {
				return filepath.SkipDir
			}
			if s.skipDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}

		if !Convertible(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if keep(filepath.ToSlash(rel)) {
			files = append(files, path)
		}
		return nil
	})

	return files, err
}
