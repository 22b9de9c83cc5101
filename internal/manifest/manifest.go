// Package manifest builds the YAML inventory of a generation run.
package manifest

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Entry describes one generated fixture file.
type Entry struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Size     int64  `yaml:"size_bytes"`
	Checksum string `yaml:"checksum,omitempty"`
	Width    int    `yaml:"width,omitempty"`
	Height   int    `yaml:"height,omitempty"`
}

// Manifest is the inventory written after a successful run.
type Manifest struct {
	GeneratedAt time.Time `yaml:"generated_at"`
	FileCount   int       `yaml:"file_count"`
	TotalBytes  int64     `yaml:"total_bytes"`
	Files       []Entry   `yaml:"files"`
}

// New returns an empty manifest stamped with the current time.
func New() *Manifest {
	return &Manifest{GeneratedAt: time.Now().UTC()}
}

// Add appends one fixture entry and folds its size into the run totals.
func (m *Manifest) Add(e Entry) {
	m.Files = append(m.Files, e)
	m.FileCount = len(m.Files)
	m.TotalBytes += e.Size
}

// WriteFile marshals the manifest as YAML and writes it to path.
func (m *Manifest) WriteFile(path string) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}
