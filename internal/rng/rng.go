// Package rng provides the random draws used by the exercise generators.
//
// Every helper takes an explicit Source so callers can inject a seeded
// generator in tests. A *rand.Rand from math/rand/v2 satisfies Source.
package rng

import "math/rand/v2"

// Source is the subset of *rand.Rand the generators need.
type Source interface {
	// IntN returns a uniform int in [0, n). It panics if n <= 0.
	IntN(n int) int

	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// globalSource draws from the process-wide math/rand/v2 generator,
// which is safe for concurrent use.
type globalSource struct{}

func (globalSource) IntN(n int) int    { return rand.IntN(n) }
func (globalSource) Float64() float64 { return rand.Float64() }

// Default returns the process-wide source.
func Default() Source {
	return globalSource{}
}

// NewSeeded returns a deterministic source. The returned source is not
// safe for concurrent use.
func NewSeeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Int returns a uniform integer in [lo, hi] inclusive.
// ok is false when the range is empty (lo > hi).
func Int(src Source, lo, hi int) (n int, ok bool) {
	if lo > hi {
		return 0, false
	}
	return lo + src.IntN(hi-lo+1), true
}

// Chance reports true with probability p.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Shuffle returns a uniformly random permutation of s (Fisher-Yates).
// s itself is left unmodified.
func Shuffle[T any](src Source, s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	for i := len(out) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Pick returns min(n, len(s)) distinct positions of s in random order.
func Pick[T any](src Source, s []T, n int) []T {
	if n <= 0 {
		return []T{}
	}
	shuffled := Shuffle(src, s)
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Choice returns a uniformly chosen element of s. s must be non-empty.
func Choice[T any](src Source, s []T) T {
	return s[src.IntN(len(s))]
}
