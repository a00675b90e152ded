package runner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/knapsack/knapsack"
)

// MetricsCollector receives the runner's operational measurements.
// Implementations must be safe for concurrent use.
type MetricsCollector interface {
	// RecordSolve is called once per solved (or failed) instance. Cached
	// results are not reported here.
	RecordSolve(method knapsack.Method, duration time.Duration, err error)

	// RecordCache is called on every cache lookup when the cache is enabled.
	RecordCache(hit bool)

	// RecordRepetition is called after each full pass over the instances.
	RecordRepetition(instances int, duration time.Duration)
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) RecordSolve(knapsack.Method, time.Duration, error) {}
func (NoopMetrics) RecordCache(bool)                                  {}
func (NoopMetrics) RecordRepetition(int, time.Duration)               {}

// PrometheusMetrics exports runner metrics through client_golang.
type PrometheusMetrics struct {
	SolvesTotal       *prometheus.CounterVec
	SolveSeconds      *prometheus.HistogramVec
	CacheLookupsTotal *prometheus.CounterVec
	RepetitionSeconds prometheus.Histogram
	InstancesTotal    prometheus.Counter
}

// NewPrometheusMetrics registers the runner metrics with reg. Use a fresh
// prometheus.NewRegistry() per process or test; registering twice with the
// same registry panics.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		SolvesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knapsack_solves_total",
				Help: "Total number of solved instances",
			},
			[]string{"method", "status"},
		),

		SolveSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "knapsack_solve_seconds",
				Help:    "Time spent solving one instance",
				Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14),
			},
			[]string{"method"},
		),

		CacheLookupsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "knapsack_cache_lookups_total",
				Help: "Result cache lookups by outcome",
			},
			[]string{"result"},
		),

		RepetitionSeconds: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "knapsack_repetition_seconds",
				Help:    "Wall time of one pass over the instance file",
				Buckets: prometheus.DefBuckets,
			},
		),

		InstancesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "knapsack_instances_total",
				Help: "Total number of instances processed, cached or not",
			},
		),
	}
}

// RecordSolve implements MetricsCollector.
func (m *PrometheusMetrics) RecordSolve(method knapsack.Method, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.SolvesTotal.WithLabelValues(method.String(), status).Inc()
	m.SolveSeconds.WithLabelValues(method.String()).Observe(duration.Seconds())
}

// RecordCache implements MetricsCollector.
func (m *PrometheusMetrics) RecordCache(hit bool) {
	if hit {
		m.CacheLookupsTotal.WithLabelValues("hit").Inc()
		return
	}
	m.CacheLookupsTotal.WithLabelValues("miss").Inc()
}

// RecordRepetition implements MetricsCollector.
func (m *PrometheusMetrics) RecordRepetition(instances int, duration time.Duration) {
	m.InstancesTotal.Add(float64(instances))
	m.RepetitionSeconds.Observe(duration.Seconds())
}
