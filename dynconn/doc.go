// SPDX-License-Identifier: MIT
// Package dynconn maintains connectivity of an undirected multigraph under edge
// insertions and deletions, and answers component-size queries.
//
// It is tuned for the annealing walk: one edge changes per step, the graph is a
// connected module plus at most one transient split, and the question asked
// after a deletion is "how large is v's component now?".
//
// Representation
//
//   - A spanning forest is stored as Euler tours, one per tree, each tour kept in
//     a randomized treap with implicit keys and parent pointers.
//   - Every vertex owns exactly one tour node; every tree edge owns two arc nodes
//     (u→v and v→u). Subtree aggregates count vertex nodes, so the size of a
//     component is the vertex count stored at its treap root.
//   - Non-tree edges sit in per-vertex swap-remove lists; each vertex node also
//     aggregates how many non-tree edge endpoints its treap subtree holds.
//
// Operations
//
//	Add(v,u)        link if v,u are in different trees, else record a non-tree edge
//	Remove(&h)      drop a non-tree edge in O(1), or cut a tree edge and look for
//	                a replacement among non-tree edges of the smaller side
//	ComponentSize   O(log n) expected: walk to the root, read the aggregate
//	Connected       O(log n) expected: compare roots
//
// Complexity
//
// Link, cut and size queries take O(log n) expected time. Replacement search
// after a tree-edge cut visits only the smaller of the two pieces and prunes
// treap subtrees that hold no non-tree edges, so it costs
// O(s·log n + d) where s is the smaller side and d the non-tree degree found
// there. No level structure is kept; the walk's deletions mostly hit cycle edges
// (O(1)) or pendant edges (s = 1).
//
// Handles
//
// Add returns a Handle bound to the forest. Remove takes *Handle and zeroes it,
// so a handle can be consumed once only; removing a zero, consumed or foreign
// handle panics with ErrStaleHandle.
package dynconn
