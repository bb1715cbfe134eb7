// SPDX-License-Identifier: MIT
// Package: rmwcs/builder
//
// impl_star.go - Star(n) and Wheel(n).
//
// Contract:
//   - Star: n ≥ 2; the first appended vertex is the center, edges (center, i)
//     for each leaf in order.
//   - Wheel: n ≥ 4; the first vertex is the hub, the other n-1 form a cycle.
//     Rim edges come first, then spokes.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that appends a star with n-1 leaves.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := d.reserveEdges(methodStar, n-1); err != nil {
			return err
		}
		center, err := d.addVertices(methodStar, n, cfg)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			d.addEdge(center, center+i, cfg)
		}
		return nil
	}
}

// Wheel returns a Constructor that appends a hub joined to every vertex of a
// C_{n-1} rim.
func Wheel(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := d.reserveEdges(methodWheel, 2*(n-1)); err != nil {
			return err
		}
		hub, err := d.addVertices(methodWheel, n, cfg)
		if err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			d.addEdge(hub+1+i, hub+1+(i+1)%rim, cfg)
		}
		for i := 1; i < n; i++ {
			d.addEdge(hub, hub+i, cfg)
		}
		return nil
	}
}
