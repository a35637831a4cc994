// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side takes the first n1 indices, right side the next n2.
//   - Emits left[i] — right[j] for i asc, then j asc.
//
// Complexity: O(n1·n2) edges.
// Minimum cover size: min(n1, n2) (König).

package builder

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(b *graphBuffer, _ builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, MinPartition); err != nil {
			return err
		}
		left := b.addVertices(n1 + n2)
		right := left + n1
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				b.addEdge(left+i, right+j)
			}
		}

		return nil
	}
}
