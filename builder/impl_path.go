// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_path.go - Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges base+i — base+i+1 for i = 0..n-2 in ascending order.
//
// Minimum cover size: ⌊n/2⌋.

package builder

// Path returns a Constructor that appends the simple path P_n.
func Path(n int) Constructor {
	return func(b *graphBuffer, _ builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		base := b.addVertices(n)
		for i := 0; i+1 < n; i++ {
			b.addEdge(base+i, base+i+1)
		}

		return nil
	}
}
