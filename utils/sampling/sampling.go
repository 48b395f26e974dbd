// Package sampling provides a seeded, deterministic source of
// cryptographically strong pseudo-random bytes.
package sampling

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Source is a deterministic byte stream expanded from a 32-byte seed with
// the BLAKE2b XOF. Two sources built from the same seed produce identical
// streams, which makes sampling reproducible across parties and test runs.
//
// A Source is not safe for concurrent use; give each goroutine its own.
type Source struct {
	seed [32]byte
	xof  blake2b.XOF
}

// NewSource instantiates a new [Source] from the given seed.
func NewSource(seed [32]byte) *Source {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, seed[:])
	if err != nil {
		// Only reachable with a key longer than 64 bytes.
		panic(fmt.Errorf("blake2b.NewXOF: %w", err))
	}
	return &Source{seed: seed, xof: xof}
}

// NewSeed returns a fresh seed read from crypto/rand.
func NewSeed() (seed [32]byte) {
	if _, err := rand.Read(seed[:]); err != nil {
		panic(fmt.Errorf("crypto/rand: %w", err))
	}
	return
}

// Seed returns the seed the receiver was instantiated with.
func (s *Source) Seed() [32]byte {
	return s.seed
}

// Read fills p with the next bytes of the stream. It never returns a short
// read and the returned error is always nil; the signature matches
// io.Reader so a Source can stand in wherever one is expected.
func (s *Source) Read(p []byte) (n int, err error) {
	return s.xof.Read(p)
}

// Reset rewinds the receiver to the beginning of its stream.
func (s *Source) Reset() {
	*s = *NewSource(s.seed)
}
