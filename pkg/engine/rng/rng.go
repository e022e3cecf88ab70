// Package rng provides the seeded random source every stochastic decision of
// a generation run is drawn from.
package rng

import (
	"hash/fnv"
	"math/rand"
	"strconv"
	"strings"
)

// Source is a deterministic pseudo-random source. Two sources created from the
// same seed produce the same sequence.
type Source struct {
	rand *rand.Rand
	seed int64
}

// New creates a source seeded with seed
func New(seed int64) *Source {
	return &Source{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// FromString creates a source from a textual seed. Integer strings are used
// as-is so "42" and New(42) agree; any other text is hashed. An empty seed
// falls back to entropy.
func FromString(seed string) *Source {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return FromEntropy()
	}
	return New(SeedFromString(seed))
}

// FromEntropy creates a source seeded from the process-wide random generator
func FromEntropy() *Source {
	return New(rand.Int63())
}

// SeedFromString converts a textual seed into the int64 it would seed a Source with
func SeedFromString(seed string) int64 {
	if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
		return n
	}
	h := fnv.New64a()
	h.Write([]byte(seed))
	return int64(h.Sum64())
}

// Seed returns the seed this source was created with
func (s *Source) Seed() int64 {
	return s.seed
}

// Intn returns a value in [0, n). It returns 0 when n <= 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rand.Intn(n)
}

// Range returns a value in [lo, hi). When the range is empty or inverted it
// returns lo without consuming randomness.
func (s *Source) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rand.Intn(hi-lo)
}

// Coin returns true with probability 1/2
func (s *Source) Coin() bool {
	return s.rand.Intn(2) == 1
}
