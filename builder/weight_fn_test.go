// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ctlab/rmwcs/builder"
)

func TestWeightFnConstructors_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.ConstWeight(math.NaN()) })
	assert.Panics(t, func() { builder.UniformWeight(2, 1) })
	assert.Panics(t, func() { builder.UniformWeight(0, math.Inf(1)) })
	assert.Panics(t, func() { builder.NormalWeight(0, -1) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithVertexWeightFn(nil) })
}

func TestWeightFnBehavior(t *testing.T) {
	assert.Equal(t, -3.5, builder.ConstWeight(-3.5)(nil))

	// Without an RNG random weights collapse to their central value.
	assert.Equal(t, 0.0, builder.UniformWeight(-2, 2)(nil))
	assert.Equal(t, 4.0, builder.NormalWeight(4, 1)(nil))
	assert.Equal(t, 3.0, builder.UniformWeight(3, 3)(rand.New(rand.NewSource(1))))

	r := rand.New(rand.NewSource(5))
	u := builder.UniformWeight(-1, 3)
	var sum float64
	const draws = 20000
	for i := 0; i < draws; i++ {
		w := u(r)
		assert.True(t, w >= -1 && w < 3)
		sum += w
	}
	assert.InDelta(t, 1.0, sum/draws, 0.05)

	nf := builder.NormalWeight(10, 0)
	assert.Equal(t, 10.0, nf(r))
}
