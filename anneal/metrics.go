// SPDX-License-Identifier: MIT
// Package: rmwcs/anneal
//
// metrics.go - step observers and the Prometheus-backed Metrics observer.

package anneal

import (
	"fmt"
	"math"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Observer is notified synchronously from Step. Implementations must be cheap;
// they run once per step.
type Observer interface {
	ObserveStep(StepResult)
	ObserveBest(score float64)
}

type nopObserver struct{}

func (nopObserver) ObserveStep(StepResult) {}
func (nopObserver) ObserveBest(float64)    {}

// Metrics exports walk statistics to Prometheus:
//
//	rmwcs_anneal_moves_total{move,outcome}  counter
//	rmwcs_anneal_best_score                 gauge
//	rmwcs_anneal_module_size                gauge
//
// One Metrics may be shared by several engines; best_score then holds the
// maximum over all of them and module_size the last size reported by any.
type Metrics struct {
	moves *prometheus.CounterVec
	best  prometheus.Gauge
	size  prometheus.Gauge

	mu       sync.Mutex
	bestSeen float64
}

// NewMetrics creates the collectors and registers them with reg.
//
// Errors: registration errors from reg, wrapped.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		bestSeen: math.Inf(-1),
		moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rmwcs",
				Subsystem: "anneal",
				Name:      "moves_total",
				Help:      "Annealing proposals by move kind and outcome",
			},
			[]string{"move", "outcome"},
		),
		best: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rmwcs",
			Subsystem: "anneal",
			Name:      "best_score",
			Help:      "Best module score seen",
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "rmwcs",
			Subsystem: "anneal",
			Name:      "module_size",
			Help:      "Vertex count of the current module",
		}),
	}
	for _, c := range []prometheus.Collector{m.moves, m.best, m.size} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("NewMetrics: %w", err)
		}
	}
	return m, nil
}

// ObserveStep counts the proposal and records the module size.
func (m *Metrics) ObserveStep(r StepResult) {
	m.moves.WithLabelValues(r.Move.String(), r.Outcome.String()).Inc()
	m.size.Set(float64(r.Size))
}

// ObserveBest raises best_score to score if it is higher.
func (m *Metrics) ObserveBest(score float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if score > m.bestSeen {
		m.bestSeen = score
		m.best.Set(score)
	}
}
