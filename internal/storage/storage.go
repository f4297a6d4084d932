// Package storage commits finished output bytes to the filesystem. It is
// the only package that writes to conversion destinations.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// Sink commits a complete output document to a destination path.
type Sink interface {
	Commit(path string, data []byte) error
}

// FileSink writes through a temp file in the destination directory and
// renames it into place, so an interrupted or failed conversion never
// leaves a partial output file.
type FileSink struct{}

// NewFileSink returns a Sink writing to the local filesystem.
func NewFileSink() *FileSink {
	return &FileSink{}
}

// Commit writes data to path, creating parent directories as needed. An
// existing file at path is replaced.
func (*FileSink) Commit(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	name := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(name, 0644); err != nil {
		os.Remove(name)
		return fmt.Errorf("set output permissions: %w", err)
	}
	if err := os.Rename(name, path); err != nil {
		os.Remove(name)
		return fmt.Errorf("replace output file: %w", err)
	}
	return nil
}
