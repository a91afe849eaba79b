package tower

import "math/rand"

// Rand is the random source used for level layout and spawn timing.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// NewRand returns a deterministic source for the given seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed)) //#nosec G404 -- game randomness, not security
}

// intn draws from [0, n) and returns 0 for empty ranges.
func intn(r Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return r.Intn(n)
}
