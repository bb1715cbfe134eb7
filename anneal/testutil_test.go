// SPDX-License-Identifier: MIT

package anneal_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ctlab/rmwcs/wgraph"
)

// scriptSource replays queued draws and falls back to 0 when a queue runs dry:
// Float64() == 0 accepts every move with P > 0, Intn() == 0 picks the first
// candidate.
type scriptSource struct {
	floats []float64
	ints   []int
}

func (s *scriptSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	f := s.floats[0]
	s.floats = s.floats[1:]
	return f
}

func (s *scriptSource) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	i := s.ints[0] % n
	s.ints = s.ints[1:]
	return i
}

// switchSource forwards to a seeded stream but can be told to fail every
// acceptance test: Float64 then returns 1, which is never below a probability.
type switchSource struct {
	*rand.Rand
	reject bool
}

func (s *switchSource) Float64() float64 {
	if s.reject {
		return 1
	}
	return s.Rand.Float64()
}

// path4 is 0-1-2-3 with unit vertex weights and edge weight 5.
func path4(t testing.TB) *wgraph.Graph {
	t.Helper()
	g, err := wgraph.New([]float64{1, 1, 1, 1}, []wgraph.EdgeSpec{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 5},
		{From: 2, To: 3, Weight: 5},
	})
	require.NoError(t, err)
	return g
}

// randomGraph draws an Erdős–Rényi-like multigraph with mixed-sign weights and
// a few parallel edges.
func randomGraph(t testing.TB, r *rand.Rand, n int, p float64) *wgraph.Graph {
	t.Helper()
	b := wgraph.NewBuilder(n)
	for v := 0; v < n; v++ {
		require.NoError(t, b.SetVertexWeight(v, r.Float64()*6-3))
	}
	for v := 0; v < n; v++ {
		for u := v + 1; u < n; u++ {
			if r.Float64() >= p {
				continue
			}
			_, err := b.AddEdge(v, u, r.Float64()*6-3)
			require.NoError(t, err)
			if r.Float64() < 0.1 {
				_, err = b.AddEdge(u, v, r.Float64()*6-3)
				require.NoError(t, err)
			}
		}
	}
	g, err := b.Build()
	require.NoError(t, err)
	return g
}

// constSchedule yields t for n steps.
type constSchedule struct {
	t float64
	n int
}

func (s *constSchedule) IsHot() bool { return s.n > 0 }

func (s *constSchedule) Temperature() float64 {
	s.n--
	return s.t
}
