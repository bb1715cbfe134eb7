// SPDX-License-Identifier: MIT
// Package: rmwcs/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Canonical model: Erdős–Rényi G(n,p); each unordered pair {i,j}, i<j, is an
// edge independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng is required for 0 < p < 1 (else ErrNeedRandSource); p ∈ {0,1}
//     is deterministic and draws no Bernoulli trials.
//   - Trial order: i ascending, then j ascending. An accepted pair draws its
//     weight right after its trial.
//
// Complexity: O(n²) trials.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if !(p >= probMin && p <= probMax) {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		rng := cfg.rng
		if rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if n > maxVertices {
			return fmt.Errorf("%s: n=%d > max=%d: %w", methodRandomSparse, n, maxVertices, ErrTooManyVertices)
		}
		if p == probMax {
			if err := d.reserveEdges(methodRandomSparse, n*(n-1)/2); err != nil {
				return err
			}
		}
		base, err := d.addVertices(methodRandomSparse, n, cfg)
		if err != nil {
			return err
		}
		if p == probMin {
			return nil
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if p < probMax && rng.Float64() >= p {
					continue
				}
				if err := d.reserveEdges(methodRandomSparse, 1); err != nil {
					return err
				}
				d.addEdge(base+i, base+j, cfg)
			}
		}
		return nil
	}
}
