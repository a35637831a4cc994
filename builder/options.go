// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs (nil RNG).
//     Constructors and BuildGraph themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import "math/rand"

// BuilderOption customizes a build by mutating builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithShuffle relabels vertices with a random permutation and shuffles the
// edge order after all constructors ran. Requires WithSeed or WithRand.
func WithShuffle() BuilderOption {
	return func(c *builderConfig) {
		c.shuffle = true
	}
}
