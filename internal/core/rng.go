package core

import "math/rand/v2"

// RNG wraps math/rand/v2 so callers can seed a board fill deterministically
// in tests and from wall-clock entropy in the interactive session.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates an RNG seeded with the provided value.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// FillBinary fills the buffer with 0/1 values, each with probability 1/2.
func (r *RNG) FillBinary(buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.r.IntN(2))
	}
}
