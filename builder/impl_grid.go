// SPDX-License-Identifier: MIT
// Package: vertexcover/builder
//
// impl_grid.go - Grid(rows, cols) constructor.
//
// Canonical model:
//   - 2D orthogonal grid with 4-neighbourhood.
//   - Cell (r,c) is vertex base + r*cols + c (row-major).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - For each cell in row-major order emit Right (r,c+1) then Bottom (r+1,c)
//     where the neighbour exists.
//
// Complexity: O(rows·cols).

package builder

// Grid returns a Constructor that appends a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(b *graphBuffer, _ builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		base := b.addVertices(rows * cols)
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					b.addEdge(at(r, c), at(r, c+1))
				}
				if r+1 < rows {
					b.addEdge(at(r, c), at(r+1, c))
				}
			}
		}

		return nil
	}
}
