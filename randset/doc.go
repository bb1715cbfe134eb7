// SPDX-License-Identifier: MIT
// Package randset provides a membership set over small integer ids with O(1)
// insert, remove, membership test and uniform random draw.
//
// Layout:
//
//	items: [ 7 | 2 | 9 | 4 ]      dense array of present ids
//	pos:   pos[7]=0 pos[2]=1 ...  id -> index in items, -1 when absent
//
// Remove swaps the victim with the last element of items before shrinking, so
// items is always a dense prefix and Random is a single Intn(len(items)).
//
// The three roles in the annealing walk (module vertices, module edges,
// boundary edges) each own a separate Set sized to the id universe.
//
// Preconditions are programmer errors: removing an absent id, drawing from an
// empty set or touching an id outside 0..capacity-1 panics.
package randset
