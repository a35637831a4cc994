// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   - Stable trial order: i asc, then j asc (j > i). One draw per pair.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import "fmt"

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(b *graphBuffer, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		rng := cfg.rng
		if rng == nil && p > MinProbability && p < MaxProbability {
			return fmt.Errorf("%s: p=%.6f: %w", MethodRandomSparse, p, ErrNeedRandSource)
		}

		base := b.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var keep bool
				if rng == nil {
					keep = p == MaxProbability
				} else {
					// Float64 ∈ [0,1): p=0 never keeps, p=1 always keeps.
					keep = rng.Float64() < p
				}
				if keep {
					b.addEdge(base+i, base+j)
				}
			}
		}

		return nil
	}
}
