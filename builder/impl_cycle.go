// SPDX-License-Identifier: MIT
// Package: rmwcs/builder
//
// impl_cycle.go - Cycle(n).
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits (i, i+1) for i = 0..n-2, then the closing edge (n-1, 0).
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := d.reserveEdges(methodCycle, n); err != nil {
			return err
		}
		base, err := d.addVertices(methodCycle, n, cfg)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			d.addEdge(base+i, base+(i+1)%n, cfg)
		}
		return nil
	}
}
