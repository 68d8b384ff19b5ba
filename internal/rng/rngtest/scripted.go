// Package rngtest provides deterministic rng.Source implementations for tests.
package rngtest

import "fmt"

// Scripted replays fixed draws. IntN consumes Ints in order and Float64
// consumes Floats in order. It panics when a script runs out or a scripted
// int is outside [0, n), so a test that drifts from its script fails loudly.
type Scripted struct {
	Ints   []int
	Floats []float64

	intPos   int
	floatPos int
}

// New returns a Scripted source replaying ints.
func New(ints ...int) *Scripted {
	return &Scripted{Ints: ints}
}

// WithFloats sets the Float64 script and returns s.
func (s *Scripted) WithFloats(floats ...float64) *Scripted {
	s.Floats = floats
	return s
}

func (s *Scripted) IntN(n int) int {
	if s.intPos >= len(s.Ints) {
		panic(fmt.Sprintf("rngtest: int script exhausted after %d draws (IntN(%d))", s.intPos, n))
	}
	v := s.Ints[s.intPos]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("rngtest: scripted int %d at position %d outside [0, %d)", v, s.intPos, n))
	}
	s.intPos++
	return v
}

func (s *Scripted) Float64() float64 {
	if s.floatPos >= len(s.Floats) {
		panic(fmt.Sprintf("rngtest: float script exhausted after %d draws", s.floatPos))
	}
	v := s.Floats[s.floatPos]
	s.floatPos++
	return v
}

// Remaining reports how many scripted ints and floats are unused.
func (s *Scripted) Remaining() (ints, floats int) {
	return len(s.Ints) - s.intPos, len(s.Floats) - s.floatPos
}
