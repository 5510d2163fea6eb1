// Package random provides the engine's RandomSource.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"

	"github.com/example/syndicate/internal/ports/secondary"
)

// Source is a seeded, goroutine-safe uniform source.
type Source struct {
	mu   sync.Mutex
	rng  *rand.Rand
	seed int64
}

// New creates a source. A zero seed is replaced with one read from crypto/rand.
func New(seed int64) *Source {
	if seed == 0 {
		seed = CryptoSeed()
	}
	return &Source{rng: rand.New(rand.NewSource(seed)), seed: seed}
}

// Seed returns the seed the source was built from.
func (s *Source) Seed() int64 {
	return s.seed
}

// Float64 returns a draw in [0,1).
func (s *Source) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64()
}

// CryptoSeed returns a non-zero seed from crypto/rand.
func CryptoSeed() int64 {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 1
	}
	// Keep it positive so it prints cleanly in logs.
	seed := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if seed == 0 {
		return 1
	}
	return seed
}

var _ secondary.RandomSource = (*Source)(nil)
