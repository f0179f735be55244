package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic
// seeding. The same seed always reproduces the same initial grid.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillStates seeds buf by drawing from choices at the given density and
// zeroing the rest. Empty choices or a density at or below zero leaves the
// buffer zeroed.
func FillStates(r *rand.Rand, buf []State, choices []State, density float64) {
	for i := range buf {
		buf[i] = 0
		if len(choices) == 0 || density <= 0 {
			continue
		}
		if r.Float64() < density {
			buf[i] = choices[r.IntN(len(choices))]
		}
	}
}
