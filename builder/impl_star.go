// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub takes the first allocated index; leaves follow in ascending order.
//   - Emits spokes hub — leaf in ascending leaf order.
//
// Minimum cover size: 1 (the hub).

package builder

// Star returns a Constructor that appends a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(b *graphBuffer, _ builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		hub := b.addVertices(n)
		for leaf := hub + 1; leaf < hub+n; leaf++ {
			b.addEdge(hub, leaf)
		}

		return nil
	}
}
