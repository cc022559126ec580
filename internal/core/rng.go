package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Float64 returns a value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Binary returns n characters of '0'/'1' where each cell is live with the
// given probability. Used to build random seeds.
func (r *RNG) Binary(n int, density float64) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = '0'
		if r.r.Float64() < density {
			buf[i] = '1'
		}
	}
	return string(buf)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
