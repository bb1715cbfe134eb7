// SPDX-License-Identifier: MIT
// Package: rmwcs/schedule
//
// schedule.go - Exponential, Linear and Constant schedules.

package schedule

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrBadSchedule indicates invalid schedule parameters or an unknown name.
var ErrBadSchedule = errors.New("schedule: invalid schedule")

// Cooling is the behaviour shared by all schedules in this package.
type Cooling interface {
	IsHot() bool
	Temperature() float64
	Reset()
	Validate() error
}

// ticker counts consumed ticks.
type ticker struct {
	tick int
}

func (k *ticker) hot(steps int) bool { return k.tick < steps }

// next returns the index of the current tick clamped to steps-1 and advances.
func (k *ticker) next(steps int) int {
	i := k.tick
	if i < steps {
		k.tick++
	} else {
		i = steps - 1
	}
	return max(i, 0)
}

// frac maps tick i of steps to [0,1].
func frac(i, steps int) float64 {
	if steps <= 1 {
		return 0
	}
	return float64(i) / float64(steps-1)
}

// Exponential cools geometrically from Start to End.
type Exponential struct {
	Start float64
	End   float64
	Steps int
	ticker
}

// IsHot reports whether ticks remain.
func (s *Exponential) IsHot() bool { return s.hot(s.Steps) }

// Temperature returns the current temperature and advances one tick.
func (s *Exponential) Temperature() float64 {
	f := frac(s.next(s.Steps), s.Steps)
	return s.Start * math.Pow(s.End/s.Start, f)
}

// Reset rewinds to the first tick.
func (s *Exponential) Reset() { s.tick = 0 }

// Validate checks Start, End > 0 and Steps > 0.
func (s *Exponential) Validate() error {
	if !(s.Start > 0) || !(s.End > 0) || math.IsInf(s.Start, 0) || math.IsInf(s.End, 0) {
		return fmt.Errorf("exponential: start=%g end=%g must be positive and finite: %w", s.Start, s.End, ErrBadSchedule)
	}
	return validSteps("exponential", s.Steps)
}

// Linear interpolates from Start to End.
type Linear struct {
	Start float64
	End   float64
	Steps int
	ticker
}

func (s *Linear) IsHot() bool { return s.hot(s.Steps) }

func (s *Linear) Temperature() float64 {
	f := frac(s.next(s.Steps), s.Steps)
	return s.Start + (s.End-s.Start)*f
}

func (s *Linear) Reset() { s.tick = 0 }

// Validate checks Start, End >= 0 and Steps > 0.
func (s *Linear) Validate() error {
	if !(s.Start >= 0) || !(s.End >= 0) || math.IsInf(s.Start, 0) || math.IsInf(s.End, 0) {
		return fmt.Errorf("linear: start=%g end=%g must be non-negative and finite: %w", s.Start, s.End, ErrBadSchedule)
	}
	return validSteps("linear", s.Steps)
}

// Constant holds T for Steps ticks. T == 0 gives a pure greedy walk.
type Constant struct {
	T     float64
	Steps int
	ticker
}

func (s *Constant) IsHot() bool { return s.hot(s.Steps) }

func (s *Constant) Temperature() float64 {
	s.next(s.Steps)
	return s.T
}

func (s *Constant) Reset() { s.tick = 0 }

func (s *Constant) Validate() error {
	if !(s.T >= 0) || math.IsInf(s.T, 0) {
		return fmt.Errorf("constant: t=%g must be non-negative and finite: %w", s.T, ErrBadSchedule)
	}
	return validSteps("constant", s.Steps)
}

func validSteps(name string, steps int) error {
	if steps <= 0 {
		return fmt.Errorf("%s: steps=%d must be positive: %w", name, steps, ErrBadSchedule)
	}
	return nil
}

// NewFromName builds and validates a schedule by name: "exp"/"exponential",
// "linear" or "const"/"constant". Constant uses start and ignores end.
func NewFromName(name string, start, end float64, steps int) (Cooling, error) {
	var s Cooling
	switch strings.ToLower(name) {
	case "exp", "exponential":
		s = &Exponential{Start: start, End: end, Steps: steps}
	case "linear":
		s = &Linear{Start: start, End: end, Steps: steps}
	case "const", "constant":
		s = &Constant{T: start, Steps: steps}
	default:
		return nil, fmt.Errorf("NewFromName: %q: %w", name, ErrBadSchedule)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("NewFromName: %w", err)
	}
	return s, nil
}
