// SPDX-License-Identifier: MIT
// Package: rmwcs/randset
//
// set.go - dense-array randomized membership set.

package randset

import "errors"

// Panic values for violated preconditions.
var (
	// ErrEmpty is the panic value of Random on an empty set.
	ErrEmpty = errors.New("randset: random draw from empty set")

	// ErrAbsent is the panic value of Remove for an id not in the set.
	ErrAbsent = errors.New("randset: remove of absent id")
)

// Intner is the integer sampler Random draws with; *rand.Rand satisfies it.
type Intner interface {
	// Intn returns a uniform int in [0,n); n > 0.
	Intn(n int) int
}

// Set is a randomized membership set over ids 0..capacity-1.
// The zero value is an empty set of capacity 0. Not safe for concurrent use.
type Set struct {
	items []int // present ids, dense
	pos   []int // id -> index into items, -1 if absent
}

// New returns an empty Set accepting ids in 0..capacity-1.
// Complexity: O(capacity).
func New(capacity int) *Set {
	pos := make([]int, capacity)
	for i := range pos {
		pos[i] = -1
	}
	return &Set{items: make([]int, 0, capacity), pos: pos}
}

// Cap returns the size of the id universe.
func (s *Set) Cap() int { return len(s.pos) }

// Len returns the number of present ids. Complexity: O(1).
func (s *Set) Len() int { return len(s.items) }

// Contains reports whether id is present. Complexity: O(1).
func (s *Set) Contains(id int) bool { return s.pos[id] >= 0 }

// Insert adds id. Inserting a present id is a no-op. Complexity: O(1).
func (s *Set) Insert(id int) {
	if s.pos[id] >= 0 {
		return
	}
	s.pos[id] = len(s.items)
	s.items = append(s.items, id)
}

// Remove deletes id, which must be present. The last element takes the freed
// slot. Complexity: O(1).
func (s *Set) Remove(id int) {
	i := s.pos[id]
	if i < 0 {
		panic(ErrAbsent)
	}
	last := len(s.items) - 1
	moved := s.items[last]
	s.items[i] = moved
	s.pos[moved] = i
	s.items = s.items[:last]
	s.pos[id] = -1
}

// Random returns a present id drawn uniformly with src. The set must not be
// empty. Exactly one src.Intn call is made. Complexity: O(1).
func (s *Set) Random(src Intner) int {
	if len(s.items) == 0 {
		panic(ErrEmpty)
	}
	return s.items[src.Intn(len(s.items))]
}

// At returns the id stored at dense index i in 0..Len()-1. The order is an
// implementation detail that changes on Remove.
func (s *Set) At(i int) int { return s.items[i] }

// Members returns a copy of the present ids in dense (unspecified) order.
// Complexity: O(Len()).
func (s *Set) Members() []int {
	out := make([]int, len(s.items))
	copy(out, s.items)
	return out
}

// Reset removes every id. Complexity: O(Len()).
func (s *Set) Reset() {
	for _, id := range s.items {
		s.pos[id] = -1
	}
	s.items = s.items[:0]
}
