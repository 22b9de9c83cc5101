// Package random provides the byte sources that fixture payloads draw from.
// Sources are plain io.Readers so callers can swap in deterministic ones.
package random

import (
	"io"
	"math/rand"
	"time"
)

// New returns a time-seeded source of pseudo-random bytes. Output is not
// reproducible across runs and is not suitable for cryptographic use.
func New() io.Reader {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// NewSeeded returns a deterministic source for the given seed, so tests can
// check structural properties against stable content.
func NewSeeded(seed int64) io.Reader {
	return rand.New(rand.NewSource(seed))
}
