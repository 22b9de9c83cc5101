package fixture

import (
	"fmt"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"

	"file-creator/internal/manifest"
)

// Sink receives generated fixtures. Create opens the named fixture for
// writing; size is the exact rendered length, known before any content is
// produced. The returned writer is closed before the next fixture begins.
type Sink interface {
	Create(name string, size int64) (io.WriteCloser, error)
	Close() error
}

// Stats counts what a run produced.
type Stats struct {
	Files int
	Bytes int64
}

// Generator drives one run: Count fixtures named in sequence, rendered by
// the payload, delivered to the sink.
type Generator struct {
	Prefix    string
	Extension string
	Count     int
	ZeroPad   int

	Payload Payload
	Source  io.Reader
	Sink    Sink

	// Progress receives the per-file announcement lines. Nil means silent.
	Progress io.Writer

	// Manifest, when set, collects an inventory entry per generated file,
	// including a BLAKE2b-256 checksum computed on the write path.
	Manifest *manifest.Manifest
}

// Run generates the fixtures strictly in sequence, first to last. A failure
// on file k aborts the run and leaves files 1..k-1 intact; file k may exist
// truncated. Invalid payload parameters are rejected before the first file
// is created. A non-positive Count generates nothing.
func (g *Generator) Run() (Stats, error) {
	var stats Stats
	size, err := g.Payload.Size()
	if err != nil {
		return stats, err
	}
	progress := g.Progress
	if progress == nil {
		progress = io.Discard
	}
	for i := 1; i <= g.Count; i++ {
		name := MakeName(g.Prefix, g.Extension, i, g.ZeroPad)
		fmt.Fprintln(progress, g.Payload.Describe(name))
		if err := g.writeOne(name, size); err != nil {
			return stats, err
		}
		stats.Files++
		stats.Bytes += size
	}
	return stats, nil
}

func (g *Generator) writeOne(name string, size int64) error {
	out, err := g.Sink.Create(name, size)
	if err != nil {
		return err
	}

	var sum hash.Hash
	dst := io.Writer(out)
	if g.Manifest != nil {
		if sum, err = blake2b.New256(nil); err != nil {
			out.Close()
			return fmt.Errorf("failed to initialize checksum: %w", err)
		}
		dst = io.MultiWriter(out, sum)
	}

	if err := g.Payload.Render(dst, g.Source); err != nil {
		out.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	if g.Manifest != nil {
		entry := manifest.Entry{
			Name:     name,
			Kind:     g.Payload.Kind(),
			Size:     size,
			Checksum: fmt.Sprintf("%x", sum.Sum(nil)),
		}
		if bmp, ok := g.Payload.(BitmapPayload); ok {
			entry.Width, entry.Height = bmp.Width, bmp.Height
		}
		g.Manifest.Add(entry)
	}
	return nil
}
