// SPDX-License-Identifier: MIT
// Package dynconn_test checks Forest against hand-built scenarios and a
// from-scratch BFS reference.

package dynconn_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctlab/rmwcs/dynconn"
)

func TestForest_Isolated(t *testing.T) {
	f := dynconn.New(5)
	assert.Equal(t, 5, f.VertexCount())
	assert.Equal(t, 0, f.EdgeCount())
	for v := 0; v < 5; v++ {
		assert.Equal(t, 1, f.ComponentSize(v))
	}
	assert.False(t, f.Connected(0, 1))
	assert.True(t, f.Connected(3, 3))
}

func TestForest_PathSplits(t *testing.T) {
	f := dynconn.New(4)
	h01 := f.Add(0, 1)
	h12 := f.Add(1, 2)
	f.Add(2, 3)
	require.Equal(t, 4, f.ComponentSize(0))
	require.Equal(t, 3, f.EdgeCount())

	f.Remove(&h12)
	assert.False(t, h12.Valid())
	assert.Equal(t, 2, f.ComponentSize(0))
	assert.Equal(t, 2, f.ComponentSize(3))
	assert.False(t, f.Connected(1, 2))

	f.Remove(&h01)
	assert.Equal(t, 1, f.ComponentSize(0))
	assert.Equal(t, 1, f.ComponentSize(1))
	assert.Equal(t, 1, f.EdgeCount())
}

func TestForest_CycleSurvivesOneRemoval(t *testing.T) {
	f := dynconn.New(4)
	hs := []dynconn.Handle{f.Add(0, 1), f.Add(1, 2), f.Add(2, 3), f.Add(3, 0)}

	// Any single edge of a 4-cycle can go without splitting it.
	for i := range hs {
		g := dynconn.New(4)
		gs := []dynconn.Handle{g.Add(0, 1), g.Add(1, 2), g.Add(2, 3), g.Add(3, 0)}
		g.Remove(&gs[i])
		for v := 0; v < 4; v++ {
			assert.Equal(t, 4, g.ComponentSize(v), "removed edge %d, vertex %d", i, v)
		}
	}

	// Two opposite edges do split it.
	f.Remove(&hs[0])
	f.Remove(&hs[2])
	assert.Equal(t, 2, f.ComponentSize(0))
	assert.True(t, f.Connected(0, 3))
	assert.True(t, f.Connected(1, 2))
	assert.False(t, f.Connected(0, 1))
}

func TestForest_ReplacementPromotesNonTreeEdge(t *testing.T) {
	// 0-1-2 path plus a parallel 1-2 edge: removing either 1-2 copy keeps the
	// component whole, removing both splits it.
	f := dynconn.New(3)
	f.Add(0, 1)
	a := f.Add(1, 2)
	b := f.Add(1, 2)

	f.Remove(&a)
	assert.Equal(t, 3, f.ComponentSize(2))
	f.Remove(&b)
	assert.Equal(t, 2, f.ComponentSize(0))
	assert.Equal(t, 1, f.ComponentSize(2))
}

func TestForest_ReplacementInLargerSide(t *testing.T) {
	// Star around 0 with a chord 4-5 and a back edge 5-1.
	f := dynconn.New(6)
	spokes := make([]dynconn.Handle, 0, 5)
	for v := 1; v < 6; v++ {
		spokes = append(spokes, f.Add(0, v))
	}
	f.Add(4, 5)
	f.Add(5, 1)

	f.Remove(&spokes[4]) // 0-5
	assert.Equal(t, 6, f.ComponentSize(5))
	f.Remove(&spokes[3]) // 0-4
	assert.Equal(t, 6, f.ComponentSize(4))
	f.Remove(&spokes[0]) // 0-1: {1,4,5} now hang off nothing
	assert.Equal(t, 3, f.ComponentSize(0))
	assert.Equal(t, 3, f.ComponentSize(4))
}

func TestForest_Panics(t *testing.T) {
	f := dynconn.New(3)
	assert.PanicsWithValue(t, dynconn.ErrSelfLoop, func() { f.Add(1, 1) })

	var zero dynconn.Handle
	assert.False(t, zero.Valid())
	assert.PanicsWithValue(t, dynconn.ErrStaleHandle, func() { f.Remove(&zero) })

	h := f.Add(0, 1)
	cp := h
	f.Remove(&h)
	assert.PanicsWithValue(t, dynconn.ErrStaleHandle, func() { f.Remove(&h) })
	assert.PanicsWithValue(t, dynconn.ErrStaleHandle, func() { f.Remove(&cp) }, "copies are consumed too")

	other := dynconn.New(3)
	foreign := other.Add(0, 1)
	assert.PanicsWithValue(t, dynconn.ErrStaleHandle, func() { f.Remove(&foreign) })
	assert.True(t, foreign.Valid())
	assert.Equal(t, 2, other.ComponentSize(0))
}

func TestForest_SeedDoesNotChangeAnswers(t *testing.T) {
	run := func(seed uint64) []int {
		f := dynconn.New(6, dynconn.WithSeed(seed))
		hs := []dynconn.Handle{f.Add(0, 1), f.Add(1, 2), f.Add(2, 0), f.Add(3, 4), f.Add(4, 5), f.Add(2, 3)}
		f.Remove(&hs[5])
		f.Remove(&hs[0])
		out := make([]int, 6)
		for v := range out {
			out[v] = f.ComponentSize(v)
		}
		return out
	}
	assert.Equal(t, run(1), run(99))
	assert.Equal(t, []int{3, 3, 3, 3, 3, 3}, run(7))
}

// bfsSizes computes component sizes from scratch over live edges.
func bfsSizes(n int, live [][2]int) []int {
	adj := make([][]int, n)
	for _, e := range live {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	comp := make([]int, n)
	for i := range comp {
		comp[i] = -1
	}
	var sizes []int
	for s := 0; s < n; s++ {
		if comp[s] >= 0 {
			continue
		}
		id := len(sizes)
		sizes = append(sizes, 0)
		queue := []int{s}
		comp[s] = id
		for len(queue) > 0 {
			v := queue[0]
			queue = queue[1:]
			sizes[id]++
			for _, u := range adj[v] {
				if comp[u] < 0 {
					comp[u] = id
					queue = append(queue, u)
				}
			}
		}
	}
	out := make([]int, n)
	for v := range out {
		out[v] = sizes[comp[v]]
	}
	return out
}

func TestForest_MatchesBFSReference(t *testing.T) {
	const n = 9
	params := gopter.DefaultTestParametersWithSeed(7)
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	// Each op word encodes: low bit add/remove, then two vertices or a handle index.
	properties.Property("component sizes agree after every op", prop.ForAll(
		func(ops []int) bool {
			f := dynconn.New(n)
			var (
				handles []dynconn.Handle
				live    [][2]int
			)
			for _, op := range ops {
				if op&1 == 0 || len(handles) == 0 {
					v, u := (op>>1)%n, (op>>5)%n
					if v == u {
						continue
					}
					handles = append(handles, f.Add(v, u))
					live = append(live, [2]int{v, u})
				} else {
					i := (op >> 1) % len(handles)
					f.Remove(&handles[i])
					last := len(handles) - 1
					handles[i], live[i] = handles[last], live[last]
					handles, live = handles[:last], live[:last]
				}
				want := bfsSizes(n, live)
				for v := 0; v < n; v++ {
					if f.ComponentSize(v) != want[v] {
						return false
					}
				}
				if f.EdgeCount() != len(live) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(0, 1<<12)),
	))
	properties.TestingRun(t)
}
