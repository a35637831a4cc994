// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_wheel.go - Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): a rim C_{n-1} plus one hub.
//   - Rim vertices take the first n-1 indices, the hub the last one.
//   - Emission order: rim edges as in Cycle(n-1), then spokes hub — rim[i], i asc.
//
// Complexity: O(n) vertices + O(2n-2) edges.
// Minimum cover size: ⌈(n-1)/2⌉ + 1.

package builder

// Wheel returns a Constructor that appends the wheel W_n.
func Wheel(n int) Constructor {
	return func(b *graphBuffer, _ builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		base := b.addVertices(n)
		rim := n - 1
		hub := base + rim
		for i := 0; i < rim; i++ {
			b.addEdge(base+i, base+(i+1)%rim)
		}
		for i := 0; i < rim; i++ {
			b.addEdge(hub, base+i)
		}

		return nil
	}
}
