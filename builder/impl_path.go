// SPDX-License-Identifier: MIT
// Package: rmwcs/builder
//
// impl_path.go - Path(n).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1, i) for i = 1..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that appends a simple path P_n.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := d.reserveEdges(methodPath, n-1); err != nil {
			return err
		}
		base, err := d.addVertices(methodPath, n, cfg)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			d.addEdge(base+i-1, base+i, cfg)
		}
		return nil
	}
}
