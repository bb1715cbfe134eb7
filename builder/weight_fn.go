// SPDX-License-Identifier: MIT
// Package: rmwcs/builder
//
// weight_fn.go - vertex and edge weight distributions.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// WeightFn produces a weight from an optional *rand.Rand. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) float64

// ConstWeight always yields w. Panics if w is not finite.
func ConstWeight(w float64) WeightFn {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		panic(fmt.Sprintf("ConstWeight: value must be finite, got %g", w))
	}
	return func(*rand.Rand) float64 { return w }
}

// UniformWeight samples uniformly in [lo, hi). Without an RNG it yields the
// midpoint. Panics unless lo <= hi, both finite.
func UniformWeight(lo, hi float64) WeightFn {
	if !(lo <= hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		panic(fmt.Sprintf("UniformWeight: require finite lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return lo + (hi-lo)/2
		}
		if lo == hi {
			return lo
		}
		return lo + rng.Float64()*(hi-lo)
	}
}

// NormalWeight samples N(mean, sd). Without an RNG it yields mean.
// Panics if sd < 0 or either argument is not finite.
func NormalWeight(mean, sd float64) WeightFn {
	if !(sd >= 0) || math.IsInf(sd, 0) || math.IsNaN(mean) || math.IsInf(mean, 0) {
		panic(fmt.Sprintf("NormalWeight: require finite mean and sd ≥ 0, got mean=%g, sd=%g", mean, sd))
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return mean
		}
		return mean + rng.NormFloat64()*sd
	}
}
