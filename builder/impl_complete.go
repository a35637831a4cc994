// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices). K_1 is a lone vertex without edges.
//   - Emits every unordered pair i<j once, ordered by i asc then j asc.
//
// Complexity: O(n²) edges.
// Minimum cover size: n-1.

package builder

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(b *graphBuffer, _ builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		base := b.addVertices(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				b.addEdge(base+i, base+j)
			}
		}

		return nil
	}
}
