// SPDX-License-Identifier: MIT
// Package: rmwcs/anneal
//
// accept.go - Metropolis acceptance for a maximisation objective.

package anneal

import "math"

// Probability returns the acceptance probability of a score change diff at
// temperature t. It is 1 for diff >= 0, exp(diff/t) for diff < 0 and t > 0,
// and 0 for diff < 0 at t <= 0. It is non-decreasing in diff and tends to a
// step function as t falls to 0.
func Probability(diff, t float64) float64 {
	if diff >= 0 {
		return 1
	}
	if !(t > 0) {
		return 0
	}
	return math.Exp(diff / t)
}

// accepts draws exactly one Float64 and compares it to Probability.
func (en *Engine) accepts(diff float64) bool {
	return en.src.Float64() < Probability(diff, en.temperature)
}
