// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_forest.go - ForestFire() constructor: the fixed 9-vertex board of the
// forest-fire game. Vertices are mountains, edges are roads; a water tank on a
// mountain protects every road touching it.
//
// Layout (hub 8 in the middle of the ring 0..7):
//
//	      1───2───3
//	     / \  |  / \
//	    0   ──8──   4
//	     \ /  |  \ /
//	      7───6───5
//
// Edges are emitted in board order, including the two duplicated roads
// 7—6 and 6—5. Minimum cover size: 5 (hub plus an alternating half of the ring).

package builder

// ForestFireVertices is the order of the ForestFire board.
const ForestFireVertices = 9

// forestFireRoads lists the board's roads in their canonical order.
var forestFireRoads = [...][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 4},
	{4, 5}, {5, 6}, {6, 7}, {7, 0},
	{1, 8}, {2, 8}, {3, 8}, {7, 8},
	{6, 8}, {5, 8}, {7, 6}, {6, 5},
}

// ForestFire returns a Constructor that appends the forest-fire board.
func ForestFire() Constructor {
	return func(b *graphBuffer, _ builderConfig) error {
		base := b.addVertices(ForestFireVertices)
		for _, r := range forestFireRoads {
			b.addEdge(base+r[0], base+r[1])
		}

		return nil
	}
}
