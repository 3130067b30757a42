// Package randseed derives deterministic per-worker random sources so
// distributed runs are reproducible from a single base seed.
package randseed

import "math/rand"

// Derive folds a worker rank into the base seed, mirroring how every
// worker of a run offsets the configured seed by its local rank.
func Derive(seed int64, rank int) int64 {
	return seed + int64(rank)
}

// NewSource returns a private PRNG for the given base seed and worker
// rank. Two workers with distinct ranks draw distinct streams; the same
// seed and rank always reproduce the same stream.
func NewSource(seed int64, rank int) *rand.Rand {
	return rand.New(rand.NewSource(Derive(seed, rank)))
}
