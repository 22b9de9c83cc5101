package fs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// DirSink writes fixtures as loose files under a single directory. Each file
// is synced and closed before the next one begins.
type DirSink struct {
	dir string
}

func NewDirSink(dir string) *DirSink {
	if dir == "" {
		dir = "."
	}
	return &DirSink{dir: dir}
}

// Create opens the named fixture for truncating binary write. The declared
// size is not enforced here; regular files grow as written.
func (s *DirSink) Create(name string, _ int64) (io.WriteCloser, error) {
	path := filepath.Join(s.dir, name)
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", path, err)
	}
	return &syncedFile{File: file}, nil
}

// Close is a no-op; the sink keeps no state between files.
func (s *DirSink) Close() error { return nil }

// syncedFile flushes contents to stable storage before closing.
type syncedFile struct {
	*os.File
}

func (f *syncedFile) Close() error {
	if err := f.Sync(); err != nil {
		f.File.Close()
		return fmt.Errorf("failed to sync file %s: %w", f.Name(), err)
	}
	if err := f.File.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", f.Name(), err)
	}
	return nil
}

// EnsureDir creates path and any missing parents, and verifies the result is
// a directory.
func EnsureDir(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", path, err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists and is not a directory", path)
	}
	return nil
}

// RemoveMatching deletes regular files directly under dir whose base name
// matches pattern, returning how many were removed. A missing dir counts as
// nothing to remove.
func RemoveMatching(dir, pattern string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		// doublestar handles the same glob syntax the cleanup flag documents.
		ok, err := doublestar.Match(pattern, entry.Name())
		if err != nil {
			return removed, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if !ok {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil {
			return removed, fmt.Errorf("failed to remove %s: %w", path, err)
		}
		removed++
	}
	return removed, nil
}
