package core

import (
	"math/rand/v2"
)

// RNG is a thin convenience wrapper around math/rand/v2.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG. A zero seed draws the PCG state from the runtime's
// random source, so runs are only reproducible in distribution.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		return &RNG{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
	}
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// IntN returns a random int in [0, n).
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}
