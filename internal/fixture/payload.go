// Package fixture generates sequences of test fixture files: raw random
// blobs or valid BMP images, named {prefix}_{index}.{extension} and written
// one at a time to a pluggable sink.
package fixture

import (
	"fmt"
	"io"

	"file-creator/internal/bitmap"
)

// ChunkSize bounds per-write memory when streaming random payloads.
const ChunkSize = 64 * 1024

// Payload is one generation mode. It knows the exact size of a fixture up
// front, renders a single fixture's content, and describes the file for
// progress output.
type Payload interface {
	// Kind labels the payload in manifests.
	Kind() string
	// Size returns the byte length of one rendered fixture, or an error
	// when the payload parameters cannot produce a valid file.
	Size() (int64, error)
	// Describe returns the progress line announcing the named file.
	Describe(name string) string
	// Render writes exactly one fixture to w, drawing randomness from src.
	Render(w io.Writer, src io.Reader) error
}

// RandomPayload emits raw random bytes of a fixed size.
type RandomPayload struct {
	SizeBytes int64
}

func (p RandomPayload) Kind() string { return "random" }

func (p RandomPayload) Size() (int64, error) {
	if p.SizeBytes < 0 {
		return 0, fmt.Errorf("file size must be non-negative, got %d", p.SizeBytes)
	}
	return p.SizeBytes, nil
}

func (p RandomPayload) Describe(name string) string {
	return fmt.Sprintf("Creating random file: %s (%d bytes)", name, p.SizeBytes)
}

func (p RandomPayload) Render(w io.Writer, src io.Reader) error {
	return writeRandom(w, src, p.SizeBytes)
}

// BitmapPayload emits a 24-bit uncompressed BMP image with random pixels.
type BitmapPayload struct {
	Width  int
	Height int
}

func (p BitmapPayload) Kind() string { return "bitmap" }

func (p BitmapPayload) Size() (int64, error) {
	return bitmap.FileSize(p.Width, p.Height)
}

func (p BitmapPayload) Describe(name string) string {
	return fmt.Sprintf("Creating BMP file: %s (%dx%d) with random pixels", name, p.Width, p.Height)
}

func (p BitmapPayload) Render(w io.Writer, src io.Reader) error {
	return bitmap.Encode(w, p.Width, p.Height, src)
}

// writeRandom copies exactly size bytes from src to w in ChunkSize pieces.
// The final chunk shrinks to land on size exactly; a size of zero writes
// nothing.
func writeRandom(w io.Writer, src io.Reader, size int64) error {
	if size <= 0 {
		return nil
	}
	buf := make([]byte, ChunkSize)
	for written := int64(0); written < size; {
		chunk := buf
		if remaining := size - written; remaining < int64(len(chunk)) {
			chunk = buf[:remaining]
		}
		if _, err := io.ReadFull(src, chunk); err != nil {
			return fmt.Errorf("failed to read random data: %w", err)
		}
		if _, err := w.Write(chunk); err != nil {
			return fmt.Errorf("failed to write chunk: %w", err)
		}
		written += int64(len(chunk))
	}
	return nil
}
