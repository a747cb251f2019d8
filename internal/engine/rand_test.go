package engine

import "math/rand"

// newTestRand returns a seeded, deterministic random source, used by
// intervaltree_test.go's randomized brute-force cross-check.
func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
