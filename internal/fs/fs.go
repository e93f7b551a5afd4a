// Package fs provides filesystem adapters that implement checker and
// linkprobe service interfaces.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// OSContentReader implements checker.ContentReader using os.ReadFile.
type OSContentReader struct{}

// ReadFileImpl reads the full content of a file.
func (OSContentReader) ReadFileImpl(_ context.Context, path string) ([]byte, error) {
	return os.ReadFile(path)
}

// ReadFile delegates to ReadFileImpl.
func (r OSContentReader) ReadFile(ctx context.Context, path string) ([]byte, error) {
	return r.ReadFileImpl(ctx, path)
}

// OSWriter implements checker.FileWriter with an atomic replace.
type OSWriter struct{}

// WriteFileImpl writes content through a temp file in the target directory
// and renames it into place, so an interrupted write cannot leave a
// half-written file behind. The original file mode is preserved.
func (OSWriter) WriteFileImpl(_ context.Context, path, content string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".mdvet-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}

// WriteFile delegates to WriteFileImpl.
func (w OSWriter) WriteFile(ctx context.Context, path, content string) error {
	return w.WriteFileImpl(ctx, path, content)
}

// OSStatter implements linkprobe.Statter using os.Stat.
type OSStatter struct{}

// ExistsImpl reports whether path names an existing file or directory.
func (OSStatter) ExistsImpl(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Exists delegates to ExistsImpl.
func (s OSStatter) Exists(path string) bool {
	return s.ExistsImpl(path)
}

// FindUpImpl walks up from startDir looking for a file named filename. It
// returns the path of the first match, or "" when no ancestor directory
// contains one.
func FindUpImpl(startDir, filename string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(dir, filename)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
