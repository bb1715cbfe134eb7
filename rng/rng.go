// SPDX-License-Identifier: MIT
// Package rng centralizes deterministic random streams for annealing runs.
//
// Goals:
//   - Determinism: same seed ⇒ identical walks on every platform.
//   - No hidden time-based sources: callers always pass a seed.
//   - Independent substreams for parallel restarts via Derive.
//
// Concurrency: *rand.Rand is NOT goroutine-safe. Give every engine its own
// stream from Derive instead of sharing one.
package rng

import "math/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed int64 = 1

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new seed with
// a SplitMix64 finalizer, so neighbouring stream ids give unrelated seeds.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// Derive returns the stream-th independent generator below parent.
// parent == 0 is replaced by DefaultSeed first, like FromSeed.
//
// Usage: call during setup, one per restart or worker.
// Complexity: O(1).
func Derive(parent int64, stream uint64) *rand.Rand {
	if parent == 0 {
		parent = DefaultSeed
	}
	return FromSeed(DeriveSeed(parent, stream))
}
