// SPDX-License-Identifier: MIT
// Package: rmwcs/builder
//
// impl_grid.go - Grid(rows, cols).
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex of cell (r,c) is base + r*cols + c (row-major).
//   - For each cell in row-major order, emits the Right edge then the Bottom
//     edge where those neighbours exist.
//
// Complexity: O(rows*cols).

package builder

import "fmt"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that appends a rows×cols 4-neighbour grid.
func Grid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		if rows > maxVertices/cols {
			return fmt.Errorf("%s: rows=%d, cols=%d: %w", methodGrid, rows, cols, ErrTooManyVertices)
		}
		if err := d.reserveEdges(methodGrid, rows*(cols-1)+cols*(rows-1)); err != nil {
			return err
		}
		base, err := d.addVertices(methodGrid, rows*cols, cfg)
		if err != nil {
			return err
		}
		at := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					d.addEdge(at(r, c), at(r, c+1), cfg)
				}
				if r+1 < rows {
					d.addEdge(at(r, c), at(r+1, c), cfg)
				}
			}
		}
		return nil
	}
}
