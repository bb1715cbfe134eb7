// SPDX-License-Identifier: MIT
// Package: rmwcs/dynconn
//
// treap.go - implicit-key randomized treap holding one Euler tour.
//
// Contract:
//   - In-order traversal of a treap is the tour sequence.
//   - Heap order on prio (max at the root) keeps expected depth O(log n).
//   - parent pointers are exact for every node reachable from a root; the root's
//     parent is nil. join/cutAt restore this after each structural change.
//   - Aggregates (size, verts, spare) are exact after pull() along every path
//     that changed.

package dynconn

// node is a treap node: either a vertex occurrence (vertex >= 0) or an arc of a
// tree edge (vertex == -1).
type node struct {
	left, right, parent *node

	prio   uint64
	vertex int // vertex id, -1 for arc nodes
	own    int // non-tree edges incident to vertex; 0 for arcs

	size  int // nodes in subtree
	verts int // vertex nodes in subtree
	spare int // sum of own over subtree
}

// pull recomputes n's aggregates from its children.
func (n *node) pull() {
	n.size = 1
	n.verts = 0
	if n.vertex >= 0 {
		n.verts = 1
	}
	n.spare = n.own
	if l := n.left; l != nil {
		n.size += l.size
		n.verts += l.verts
		n.spare += l.spare
	}
	if r := n.right; r != nil {
		n.size += r.size
		n.verts += r.verts
		n.spare += r.spare
	}
}

// pullPath recomputes aggregates from n up to its root.
func pullPath(n *node) {
	for ; n != nil; n = n.parent {
		n.pull()
	}
}

func sizeOf(n *node) int {
	if n == nil {
		return 0
	}
	return n.size
}

// rootOf returns the root of the treap containing n. O(depth).
func rootOf(n *node) *node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// indexOf returns n's 0-based position in its tour. O(depth).
func indexOf(n *node) int {
	i := sizeOf(n.left)
	for n.parent != nil {
		if n == n.parent.right {
			i += sizeOf(n.parent.left) + 1
		}
		n = n.parent
	}
	return i
}

// join concatenates two tours given by their roots and returns the new root.
func join(a, b *node) *node {
	r := merge(a, b)
	if r != nil {
		r.parent = nil
	}
	return r
}

func merge(a, b *node) *node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.prio > b.prio {
		a.right = merge(a.right, b)
		a.right.parent = a
		a.pull()
		return a
	}
	b.left = merge(a, b.left)
	b.left.parent = b
	b.pull()
	return b
}

// cutAt splits the tour rooted at t into its first k nodes and the rest.
// Both returned roots have nil parents.
func cutAt(t *node, k int) (*node, *node) {
	l, r := split(t, k)
	if l != nil {
		l.parent = nil
	}
	if r != nil {
		r.parent = nil
	}
	return l, r
}

// split leaves parent pointers of the two returned roots stale; cutAt fixes them.
func split(t *node, k int) (*node, *node) {
	if t == nil {
		return nil, nil
	}
	if sizeOf(t.left) >= k {
		a, b := split(t.left, k)
		t.left = b
		if b != nil {
			b.parent = t
		}
		t.pull()
		return a, t
	}
	a, b := split(t.right, k-sizeOf(t.left)-1)
	t.right = a
	if a != nil {
		a.parent = t
	}
	t.pull()
	return t, b
}

// reroot rotates n's tour so that it starts at n and returns the new root.
func reroot(n *node) *node {
	r := rootOf(n)
	k := indexOf(n)
	if k == 0 {
		return r
	}
	l, rest := cutAt(r, k)
	return join(rest, l)
}
