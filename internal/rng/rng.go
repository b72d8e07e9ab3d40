// Package rng provides deterministic random sources and seed resolution
// for map generation.
package rng

import "math/rand/v2"

// Source is a seeded pseudorandom stream. A fixed seed yields a fixed
// sequence of draws for a fixed sequence of calls, which is what makes
// generated maps reproducible.
type Source struct {
	r *rand.Rand
}

// New creates a deterministic Source using the provided seed.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, 0))}
}

// Bool draws one Bernoulli sample: true with the given probability.
// Probabilities at or below 0 never yield true; at or above 1, always.
func (s *Source) Bool(probability float64) bool {
	return s.r.Float64() < probability
}

// Uint64 returns the next raw value from the stream.
func (s *Source) Uint64() uint64 {
	return s.r.Uint64()
}
