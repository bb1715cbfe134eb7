// SPDX-License-Identifier: MIT

package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctlab/rmwcs/schedule"
)

func drain(s schedule.Cooling) []float64 {
	var out []float64
	for s.IsHot() {
		out = append(out, s.Temperature())
	}
	return out
}

func TestExponential_Endpoints(t *testing.T) {
	s := &schedule.Exponential{Start: 8, End: 1, Steps: 4}
	require.NoError(t, s.Validate())
	got := drain(s)
	require.Len(t, got, 4)
	assert.InDelta(t, 8, got[0], 1e-12)
	assert.InDelta(t, 4, got[1], 1e-12)
	assert.InDelta(t, 2, got[2], 1e-12)
	assert.InDelta(t, 1, got[3], 1e-12)

	// Exhausted schedules keep the final value.
	assert.False(t, s.IsHot())
	assert.InDelta(t, 1, s.Temperature(), 1e-12)

	s.Reset()
	assert.True(t, s.IsHot())
	assert.InDelta(t, 8, s.Temperature(), 1e-12)
}

func TestLinear_Endpoints(t *testing.T) {
	got := drain(&schedule.Linear{Start: 3, End: 0, Steps: 4})
	assert.InDeltaSlice(t, []float64{3, 2, 1, 0}, got, 1e-12)

	one := drain(&schedule.Linear{Start: 5, End: 1, Steps: 1})
	assert.Equal(t, []float64{5}, one)
}

func TestConstant(t *testing.T) {
	got := drain(&schedule.Constant{T: 0.5, Steps: 3})
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, got)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		s    schedule.Cooling
		ok   bool
	}{
		{"exp ok", &schedule.Exponential{Start: 1, End: 0.01, Steps: 10}, true},
		{"exp zero end", &schedule.Exponential{Start: 1, End: 0, Steps: 10}, false},
		{"exp zero steps", &schedule.Exponential{Start: 1, End: 0.1}, false},
		{"linear to zero", &schedule.Linear{Start: 1, End: 0, Steps: 10}, true},
		{"linear negative", &schedule.Linear{Start: -1, End: 0, Steps: 10}, false},
		{"const zero", &schedule.Constant{T: 0, Steps: 1}, true},
		{"const negative", &schedule.Constant{T: -1, Steps: 1}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.s.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, schedule.ErrBadSchedule)
			}
		})
	}
}

func TestNewFromName(t *testing.T) {
	s, err := schedule.NewFromName("EXP", 2, 1, 2)
	require.NoError(t, err)
	assert.IsType(t, &schedule.Exponential{}, s)

	s, err = schedule.NewFromName("const", 0.25, 99, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.25}, drain(s))

	_, err = schedule.NewFromName("cubic", 1, 0, 1)
	assert.ErrorIs(t, err, schedule.ErrBadSchedule)

	_, err = schedule.NewFromName("linear", 1, 0, 0)
	assert.ErrorIs(t, err, schedule.ErrBadSchedule)
}
