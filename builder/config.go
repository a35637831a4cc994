// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - rng     = nil    (pure/deterministic unless seeded)
//   - shuffle = false  (constructor numbering is kept)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Relabel vertices and reorder edges after construction.
	shuffle bool
}

// newBuilderConfig applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
