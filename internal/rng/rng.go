// Package rng holds the seeding policy shared by every stochastic search.
package rng

import "math/rand"

// DefaultSeed is the fixed seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// Random is a source of uniform draws in [0,1). *math/rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Resolve picks the injected source if any, else a stream seeded by FromSeed.
func Resolve(r Random, seed int64) Random {
	if r != nil {
		return r
	}

	return FromSeed(seed)
}
