// SPDX-License-Identifier: MIT

package anneal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ctlab/rmwcs/anneal"
	"github.com/ctlab/rmwcs/wgraph"
)

func TestModule_Validate(t *testing.T) {
	g := path4(t)
	cases := []struct {
		name string
		m    anneal.Module
		err  error
	}{
		{"empty", anneal.Module{}, nil},
		{"single vertex", anneal.Module{Vertices: []int{2}, Score: 1}, nil},
		{"path prefix", anneal.Module{Vertices: []int{0, 1, 2}, Edges: []int{0, 1}, Score: 13}, nil},
		{"edge outside", anneal.Module{Vertices: []int{0, 1}, Edges: []int{0, 1}, Score: 12}, anneal.ErrModuleEdgeOutside},
		{"disconnected", anneal.Module{Vertices: []int{0, 3}, Score: 2}, anneal.ErrModuleDisconnected},
		{"wrong score", anneal.Module{Vertices: []int{0, 1}, Edges: []int{0}, Score: 8}, anneal.ErrModuleScore},
		{"bad vertex", anneal.Module{Vertices: []int{9}}, wgraph.ErrVertexOutOfRange},
		{"bad edge", anneal.Module{Vertices: []int{0}, Edges: []int{7}}, wgraph.ErrEdgeOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.m.Validate(g)
			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

func TestModule_BestIsACopy(t *testing.T) {
	g := path4(t)
	en, err := anneal.New(g, &scriptSource{})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		en.Step(1)
	}
	b := en.Best()
	b.Vertices[0] = 99
	assert.Equal(t, []int{0, 1, 2}, en.Best().Vertices)
	assert.Equal(t, 3, en.Best().Size())
	assert.False(t, en.Best().Empty())
}

func TestModule_YAMLShape(t *testing.T) {
	out, err := yaml.Marshal(anneal.Module{Vertices: []int{1, 2}, Edges: []int{4}, Score: 2.5})
	require.NoError(t, err)
	assert.Equal(t, "vertices:\n    - 1\n    - 2\nedges:\n    - 4\nscore: 2.5\n", string(out))
}
