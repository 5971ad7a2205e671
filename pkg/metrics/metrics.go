// Package metrics exports react propagation rounds as Prometheus metrics.
package metrics

import (
	"github.com/delaneyj/cellparty/react"
	"github.com/prometheus/client_golang/prometheus"
)

// Collector implements react.Observer.
type Collector struct {
	Rounds        prometheus.Counter
	Recomputed    prometheus.Counter
	Changed       prometheus.Counter
	Notified      prometheus.Counter
	RoundDuration prometheus.Histogram
}

var _ react.Observer = (*Collector)(nil)

// New creates a Collector and registers its metrics on reg.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		Rounds: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "react_rounds_total",
			Help: "Total number of propagation rounds triggered by SetValue.",
		}),
		Recomputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "react_cells_recomputed_total",
			Help: "Total number of compute cell evaluations during propagation.",
		}),
		Changed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "react_cells_changed_total",
			Help: "Total number of compute cells whose value changed in a round.",
		}),
		Notified: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "react_listeners_notified_total",
			Help: "Total number of listener invocations.",
		}),
		RoundDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "react_round_duration_seconds",
			Help:    "Propagation round latency, including listener delivery.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}

	for _, m := range []prometheus.Collector{c.Rounds, c.Recomputed, c.Changed, c.Notified, c.RoundDuration} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Collector) ObserveRound(s react.RoundStats) {
	c.Rounds.Inc()
	c.Recomputed.Add(float64(s.Recomputed))
	c.Changed.Add(float64(s.Changed))
	c.Notified.Add(float64(s.Notified))
	c.RoundDuration.Observe(s.Duration.Seconds())
}
