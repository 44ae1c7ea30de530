// Package metrics exposes prometheus counters for planning sessions.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "bouquet"

// Metrics groups the planner counters. A nil *Metrics ignores every call.
type Metrics struct {
	Sessions   prometheus.Counter
	Sweeps     prometheus.Counter
	Bouquets   *prometheus.CounterVec
	Infeasible *prometheus.CounterVec
	Consumed   *prometheus.CounterVec
}

// ObserveSession counts a finished planning session
func (m *Metrics) ObserveSession() {
	if m == nil {
		return
	}
	m.Sessions.Inc()
}

// ObserveSweep counts a sweep
func (m *Metrics) ObserveSweep() {
	if m == nil {
		return
	}
	m.Sweeps.Inc()
}

// ObserveBouquet counts a bouquet made from design and the flowers it consumed per species.
func (m *Metrics) ObserveBouquet(design string, consumed map[string]int) {
	if m == nil {
		return
	}
	m.Bouquets.WithLabelValues(design).Inc()
	for species, amount := range consumed {
		m.Consumed.WithLabelValues(species).Add(float64(amount))
	}
}

// ObserveInfeasible counts a design that could not be made
func (m *Metrics) ObserveInfeasible(design string) {
	if m == nil {
		return
	}
	m.Infeasible.WithLabelValues(design).Inc()
}

// New creates and registers the counters with registerer.
func New(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		Sessions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_total",
			Help:      "Number of planning sessions.",
		}),
		Sweeps: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sweeps_total",
			Help:      "Number of sweeps over the design list.",
		}),
		Bouquets: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bouquets_total",
			Help:      "Number of bouquets made per design.",
		}, []string{"design"}),
		Infeasible: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "infeasible_total",
			Help:      "Number of allocation attempts that could not be satisfied per design.",
		}, []string{"design"}),
		Consumed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flowers_consumed_total",
			Help:      "Number of flowers debited per species.",
		}, []string{"species"}),
	}
}
