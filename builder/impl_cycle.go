// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits edges in stable order i — (i+1)%n for i = 0..n-1 (offset by base).
//
// Complexity: O(n).
// Minimum cover size: ⌈n/2⌉.

package builder

// Cycle returns a Constructor that appends the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(b *graphBuffer, _ builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		base := b.addVertices(n)
		// Close the ring with the wrap-around edge last.
		for i := 0; i < n; i++ {
			b.addEdge(base+i, base+(i+1)%n)
		}

		return nil
	}
}
