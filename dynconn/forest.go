// SPDX-License-Identifier: MIT
// Package: rmwcs/dynconn
//
// forest.go - Forest, Handle and the add/remove/size operations.

package dynconn

import "errors"

// Panic values for violated preconditions. These indicate a bug in the caller's
// bookkeeping, never an expected runtime condition.
var (
	// ErrStaleHandle is the panic value of Remove for a zero, consumed or foreign handle.
	ErrStaleHandle = errors.New("dynconn: stale or foreign edge handle")

	// ErrSelfLoop is the panic value of Add for v == u.
	ErrSelfLoop = errors.New("dynconn: self-loop edge")
)

// defaultSeed initializes the priority stream; any constant works, a fixed one
// keeps treap shapes reproducible.
const defaultSeed uint64 = 0x5eed

// edge is one inserted edge instance.
type edge struct {
	forest *Forest // nil once removed
	u, v   int

	tree   bool
	uv, vu *node // arc nodes while tree

	iu, iv int // positions in spare[u], spare[v] while non-tree
}

// Handle identifies one edge instance inside the Forest that issued it.
// The zero Handle is invalid. A Handle is consumed by Remove.
type Handle struct {
	e *edge
}

// Valid reports whether h still refers to a live edge.
func (h Handle) Valid() bool {
	return h.e != nil && h.e.forest != nil
}

// Option configures a Forest.
type Option func(*Forest)

// WithSeed sets the seed of the treap priority stream.
func WithSeed(seed uint64) Option {
	return func(f *Forest) { f.seed = seed }
}

// Forest is a dynamic connectivity structure over vertices 0..n-1.
// Not safe for concurrent use.
type Forest struct {
	verts []*node   // vertex -> its tour node
	spare [][]*edge // vertex -> incident non-tree edges
	edges int
	seed  uint64
}

// New returns a Forest of n isolated vertices.
// Complexity: O(n).
func New(n int, opts ...Option) *Forest {
	f := &Forest{
		verts: make([]*node, n),
		spare: make([][]*edge, n),
		seed:  defaultSeed,
	}
	for _, opt := range opts {
		opt(f)
	}
	for v := range f.verts {
		f.verts[v] = f.newNode(v)
	}
	return f
}

// VertexCount returns n.
func (f *Forest) VertexCount() int { return len(f.verts) }

// EdgeCount returns the number of live edges, tree and non-tree.
func (f *Forest) EdgeCount() int { return f.edges }

// Add inserts the edge {v,u} and returns its handle. v and u may already be
// connected, in which case the edge closes a cycle and is kept as a non-tree
// edge. Parallel edges are allowed.
//
// Complexity: O(log n) expected.
// Panics: ErrSelfLoop if v == u; index panic for out-of-range vertices.
func (f *Forest) Add(v, u int) Handle {
	if v == u {
		panic(ErrSelfLoop)
	}
	e := &edge{forest: f, u: v, v: u}
	if rootOf(f.verts[v]) != rootOf(f.verts[u]) {
		f.link(e)
	} else {
		f.addSpare(e)
	}
	f.edges++
	return Handle{e: e}
}

// Remove deletes the edge identified by *h and zeroes *h.
//
// Implementation:
//   - Stage 1: Validate the handle and mark its edge consumed.
//   - Stage 2: Non-tree edge: unlink it from both spare lists, done.
//   - Stage 3: Tree edge: cut the tour in two.
//   - Stage 4: Scan the smaller piece for a non-tree edge leaving it; if found,
//     promote it to a tree edge and link the pieces back together.
//
// Complexity: O(1) for non-tree edges; O(log n) plus the replacement scan
// (see package doc) for tree edges.
// Panics: ErrStaleHandle for a zero, already removed or foreign handle.
func (f *Forest) Remove(h *Handle) {
	e := h.e
	if e == nil || e.forest != f {
		panic(ErrStaleHandle)
	}
	h.e = nil
	e.forest = nil
	f.edges--

	if !e.tree {
		f.dropSpare(e)
		return
	}
	a, b := f.cut(e)
	small := a
	if b.verts < a.verts {
		small = b
	}
	if r := f.findReplacement(small); r != nil {
		f.dropSpare(r)
		f.link(r)
	}
}

// ComponentSize returns the number of vertices connected to v, v included.
// Complexity: O(log n) expected.
func (f *Forest) ComponentSize(v int) int {
	return rootOf(f.verts[v]).verts
}

// Connected reports whether v and u are in the same component.
// Complexity: O(log n) expected.
func (f *Forest) Connected(v, u int) bool {
	return rootOf(f.verts[v]) == rootOf(f.verts[u])
}

// link turns e into a tree edge joining two different trees.
func (f *Forest) link(e *edge) {
	e.tree = true
	e.uv = f.newNode(-1)
	e.vu = f.newNode(-1)
	tu := reroot(f.verts[e.u])
	tv := reroot(f.verts[e.v])
	join(join(join(tu, e.uv), tv), e.vu)
}

// cut removes tree edge e and returns the roots of the two resulting tours.
//
// With the tour laid out as L [a] M [b] R for the two arcs a, b of e, M is one
// tree and L+R the other, whichever arc comes first.
func (f *Forest) cut(e *edge) (*node, *node) {
	r := rootOf(e.uv)
	i, j := indexOf(e.uv), indexOf(e.vu)
	if i > j {
		i, j = j, i
	}
	left, rest := cutAt(r, i)
	_, rest = cutAt(rest, 1)
	mid, rest := cutAt(rest, j-i-1)
	_, right := cutAt(rest, 1)

	e.tree = false
	e.uv, e.vu = nil, nil
	return mid, join(left, right)
}

// findReplacement returns a non-tree edge with exactly one endpoint in the tree
// rooted at small, or nil. Subtrees holding no non-tree edges are skipped.
func (f *Forest) findReplacement(small *node) *edge {
	var found *edge
	var walk func(n *node) bool
	walk = func(n *node) bool {
		if n == nil || n.spare == 0 {
			return false
		}
		if walk(n.left) {
			return true
		}
		if n.own > 0 {
			for _, e := range f.spare[n.vertex] {
				other := e.u
				if other == n.vertex {
					other = e.v
				}
				if rootOf(f.verts[other]) != small {
					found = e
					return true
				}
			}
		}
		return walk(n.right)
	}
	walk(small)
	return found
}

func (f *Forest) addSpare(e *edge) {
	e.iu = len(f.spare[e.u])
	f.spare[e.u] = append(f.spare[e.u], e)
	f.bump(e.u, 1)

	e.iv = len(f.spare[e.v])
	f.spare[e.v] = append(f.spare[e.v], e)
	f.bump(e.v, 1)
}

func (f *Forest) dropSpare(e *edge) {
	f.unlist(e.u, e.iu)
	f.bump(e.u, -1)
	f.unlist(e.v, e.iv)
	f.bump(e.v, -1)
}

// unlist swap-removes position i from spare[x].
func (f *Forest) unlist(x, i int) {
	list := f.spare[x]
	last := len(list) - 1
	moved := list[last]
	list[i] = moved
	if moved.u == x {
		moved.iu = i
	} else {
		moved.iv = i
	}
	list[last] = nil
	f.spare[x] = list[:last]
}

// bump adjusts x's non-tree degree and refreshes aggregates up to the root.
func (f *Forest) bump(x, d int) {
	n := f.verts[x]
	n.own += d
	pullPath(n)
}

func (f *Forest) newNode(vertex int) *node {
	n := &node{prio: f.nextPrio(), vertex: vertex}
	n.pull()
	return n
}

// nextPrio advances a SplitMix64 stream.
func (f *Forest) nextPrio() uint64 {
	f.seed += 0x9e3779b97f4a7c15
	z := f.seed
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
