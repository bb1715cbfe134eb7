// SPDX-License-Identifier: MIT
// Package: rmwcs/builder
//
// impl_complete.go - Complete(n).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 is a lone vertex.
//   - Emits (i, j) for i < j, i ascending then j ascending.
//
// Complexity: O(n²).

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends K_n.
func Complete(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if n > maxVertices {
			return fmt.Errorf("%s: n=%d > max=%d: %w", methodComplete, n, maxVertices, ErrTooManyVertices)
		}
		if err := d.reserveEdges(methodComplete, n*(n-1)/2); err != nil {
			return err
		}
		base, err := d.addVertices(methodComplete, n, cfg)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d.addEdge(base+i, base+j, cfg)
			}
		}
		return nil
	}
}
