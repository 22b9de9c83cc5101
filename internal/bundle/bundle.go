// Package bundle packs generated fixtures into an lz4-compressed tar stream,
// so a single archive can stand in for a directory of loose files.
package bundle

import (
	"archive/tar"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pierrec/lz4/v4"
)

// Writer is an archive in progress. Entries are written strictly one at a
// time with their size declared up front.
type Writer struct {
	file *os.File
	lz   *lz4.Writer
	tw   *tar.Writer
}

// Create opens path for writing and layers the tar and lz4 writers over it.
func Create(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive %s: %w", path, err)
	}
	lz := lz4.NewWriter(file)
	return &Writer{file: file, lz: lz, tw: tar.NewWriter(lz)}, nil
}

// Create starts the named entry. Exactly size bytes must be written before
// the next entry starts; the returned closer finalizes nothing, the archive
// stays open for further entries.
func (w *Writer) Create(name string, size int64) (io.WriteCloser, error) {
	hdr := &tar.Header{
		Name:    name,
		Mode:    0o644,
		Size:    size,
		ModTime: time.Now(),
	}
	if err := w.tw.WriteHeader(hdr); err != nil {
		return nil, fmt.Errorf("failed to add archive entry %s: %w", name, err)
	}
	return entry{tw: w.tw}, nil
}

// Close flushes the tar stream, the compressor, and the underlying file, in
// that order. The first failure is reported; later layers are still closed.
func (w *Writer) Close() error {
	var firstErr error
	if err := w.tw.Close(); err != nil {
		firstErr = fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := w.lz.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to flush compressor: %w", err)
	}
	if err := w.file.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("failed to close archive file: %w", err)
	}
	return firstErr
}

// entry adapts the shared tar writer to the per-file WriteCloser the
// generator expects.
type entry struct {
	tw *tar.Writer
}

func (e entry) Write(p []byte) (int, error) { return e.tw.Write(p) }

func (e entry) Close() error { return nil }
