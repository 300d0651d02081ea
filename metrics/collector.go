// SPDX-License-Identifier: MIT

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/parmat/matrix"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "parmat"

// Outcome label values of multiplications_total.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Collector holds the engine metrics for one registry.
type Collector struct {
	Multiplications *prometheus.CounterVec
	Failures        *prometheus.CounterVec
	WorkersSpawned  prometheus.Counter
	Duration        prometheus.Histogram
	LastWorkers     prometheus.Gauge
}

var _ matrix.Observer = (*Collector)(nil)

// NewCollector creates and registers the engine metrics on reg.
// A nil reg creates unregistered metrics (promauto.With semantics).
// Panics if the metrics are already registered on reg.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	f := promauto.With(reg)

	return &Collector{
		Multiplications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "multiplications_total",
			Help:      "Total number of Mul calls by outcome",
		}, []string{"outcome"}),
		Failures: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Failed Mul calls by error kind",
		}, []string{"kind"}),
		WorkersSpawned: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "workers_spawned_total",
			Help:      "Total number of worker goroutines spawned",
		}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "multiply_duration_seconds",
			Help:      "Wall-clock duration of Mul calls in seconds",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
		}),
		LastWorkers: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_workers",
			Help:      "Worker count resolved by the most recent Mul call",
		}),
	}
}

// ObserveMul records one report.
func (c *Collector) ObserveMul(rep matrix.Report) {
	c.Duration.Observe(rep.Elapsed.Seconds())
	c.WorkersSpawned.Add(float64(rep.Chunks))
	if rep.Workers > 0 {
		c.LastWorkers.Set(float64(rep.Workers))
	}
	if rep.Err != nil {
		c.Multiplications.WithLabelValues(OutcomeError).Inc()
		c.Failures.WithLabelValues(matrix.KindOf(rep.Err).String()).Inc()
		return
	}
	c.Multiplications.WithLabelValues(OutcomeOK).Inc()
}
