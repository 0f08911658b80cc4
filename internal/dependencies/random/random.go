package random

import (
	"encoding/binary"

	"lukechampine.com/frand"
)

// Random provides random number generation that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// Shuffle pseudo-randomly permutes n elements using swap
	Shuffle(n int, swap func(i, j int))
}

// FastRandom implements Random using a ChaCha-based generator
type FastRandom struct {
	rng *frand.RNG
}

// New creates a FastRandom seeded from the operating system
func New() *FastRandom {
	return &FastRandom{rng: frand.New()}
}

// NewSeeded creates a FastRandom whose output is fully determined by seed.
// The same seed always reproduces the same sequence.
func NewSeeded(seed int64) *FastRandom {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, uint64(seed))
	return &FastRandom{rng: frand.NewCustom(key, 1024, 12)}
}

// Intn returns a random int in [0, n)
func (r *FastRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rng.Intn(n)
}

// Shuffle pseudo-randomly permutes n elements using swap
func (r *FastRandom) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	r.rng.Shuffle(n, swap)
}
