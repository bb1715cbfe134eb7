// SPDX-License-Identifier: MIT
// Package: rmwcs/anneal
//
// types.go - collaborator interfaces, options, step reports and sentinel errors.

package anneal

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors.
var (
	// ErrNilGraph indicates New was called without a graph.
	ErrNilGraph = errors.New("anneal: nil graph")

	// ErrNilSource indicates New was called without a random source.
	ErrNilSource = errors.New("anneal: nil random source")

	// ErrEmptyGraph indicates a graph with no vertices.
	ErrEmptyGraph = errors.New("anneal: graph has no vertices")

	// ErrInvalidTemperature indicates a negative or NaN temperature from a schedule.
	ErrInvalidTemperature = errors.New("anneal: invalid temperature")

	// ErrNilSchedule indicates Run was called without a schedule.
	ErrNilSchedule = errors.New("anneal: nil schedule")

	// ErrBadRestarts indicates invalid RestartOptions.
	ErrBadRestarts = errors.New("anneal: invalid restart options")

	// ErrModuleEdgeOutside indicates a module edge with an endpoint outside the module.
	ErrModuleEdgeOutside = errors.New("anneal: module edge leaves the module")

	// ErrModuleDisconnected indicates a non-empty module that is not connected.
	ErrModuleDisconnected = errors.New("anneal: module is not connected")

	// ErrModuleScore indicates a module score that differs from its recomputed weight.
	ErrModuleScore = errors.New("anneal: module score mismatch")
)

// Schedule drives Run: IsHot reports whether to continue, Temperature returns
// the temperature for the next step. Temperatures should be non-increasing.
type Schedule interface {
	IsHot() bool
	Temperature() float64
}

// RandomSource supplies uniform draws. *rand.Rand satisfies it.
type RandomSource interface {
	// Float64 returns a value in [0,1).
	Float64() float64
	// Intn returns a value in [0,n); n > 0.
	Intn(n int) int
}

// Move names the kind of proposal a step made.
type Move uint8

const (
	// MoveSeed adds a single vertex to the empty module.
	MoveSeed Move = iota
	// MoveGrow adds a boundary edge.
	MoveGrow
	// MoveShrinkPair removes the only edge of a two-vertex module.
	MoveShrinkPair
	// MoveShrinkPendant removes a pendant vertex with its edge.
	MoveShrinkPendant
	// MoveShrinkCycle removes an edge between two vertices of degree > 1.
	MoveShrinkCycle
	// MoveDropLone removes the last vertex of an edgeless module.
	MoveDropLone

	numMoves
)

var moveNames = [numMoves]string{"seed", "grow", "shrink_pair", "shrink_pendant", "shrink_cycle", "drop_lone"}

func (m Move) String() string {
	if m < numMoves {
		return moveNames[m]
	}
	return "unknown"
}

// Outcome is what happened to a proposal.
type Outcome uint8

const (
	// Accepted moves were committed.
	Accepted Outcome = iota
	// Rejected moves failed the acceptance test.
	Rejected
	// Illegal moves would have split the module into two multi-vertex pieces.
	Illegal
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case Rejected:
		return "rejected"
	case Illegal:
		return "illegal"
	}
	return "unknown"
}

// StepResult reports one Step.
type StepResult struct {
	Move        Move
	Outcome     Outcome
	Edge        int     // proposed edge, -1 for vertex-only moves
	Vertex      int     // vertex that joined or left, -1 if none
	Diff        float64 // proposed score change
	Score       float64 // score after the step
	Size        int     // module vertex count after the step
	Temperature float64
	Improved    bool // the step produced a new best module
}

// Stats are cumulative step counters of an Engine.
type Stats struct {
	Steps        int64
	Accepted     int64
	Rejected     int64
	Illegal      int64
	Improvements int64
	ByMove       [numMoves]int64
}

// Option configures an Engine.
type Option func(*config)

type config struct {
	logger     *log.Logger
	observer   Observer
	gateCycles bool
	checkEvery int
	forestSeed uint64
}

const defaultCheckEvery = 1024

func defaultConfig() config {
	return config{
		logger:     log.New(io.Discard),
		observer:   nopObserver{},
		checkEvery: defaultCheckEvery,
		forestSeed: 0x5eed,
	}
}

// WithLogger routes engine diagnostics to l. Nil keeps the discarding default.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver receives every StepResult and best-score change. Nil disables.
func WithObserver(o Observer) Option {
	return func(c *config) {
		if o == nil {
			o = nopObserver{}
		}
		c.observer = o
	}
}

// WithGatedCycleRemoval makes cycle-edge removals pass the acceptance test
// like every other move.
func WithGatedCycleRemoval(on bool) Option {
	return func(c *config) { c.gateCycles = on }
}

// WithCheckEvery sets how many steps Run takes between context checks.
// Values < 1 are treated as 1.
func WithCheckEvery(n int) Option {
	return func(c *config) { c.checkEvery = max(n, 1) }
}

// WithForestSeed seeds the connectivity forest's internal priorities. It never
// affects the walk, only internal tree shapes.
func WithForestSeed(seed uint64) Option {
	return func(c *config) { c.forestSeed = seed }
}
