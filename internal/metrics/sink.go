// Package metrics exports planner runs as Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pdrpinto/gridplan"
)

// Sink implements gridplan.MetricsSink.
type Sink struct {
	runs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	cpu      *prometheus.HistogramVec
	expanded *prometheus.HistogramVec
	alloc    *prometheus.HistogramVec
}

// NewSink registers the planner collectors with reg.
func NewSink(reg prometheus.Registerer) *Sink {
	s := &Sink{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "gridplan_runs_total",
			Help: "Planner calls by algorithm and result",
		}, []string{"algorithm", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridplan_run_duration_seconds",
			Help:    "Planner call wall-clock duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16), // 10µs to ~0.3s
		}, []string{"algorithm"}),
		cpu: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridplan_run_cpu_seconds",
			Help:    "Process CPU time (user+system) spent during a planner call",
			Buckets: prometheus.ExponentialBuckets(0.00001, 2, 16),
		}, []string{"algorithm"}),
		expanded: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridplan_expanded_nodes",
			Help:    "Cells expanded per planner call",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"algorithm"}),
		alloc: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gridplan_alloc_bytes",
			Help:    "Heap bytes allocated per planner call",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 10),
		}, []string{"algorithm"}),
	}
	reg.MustRegister(s.runs, s.duration, s.cpu, s.expanded, s.alloc)
	return s
}

func (s *Sink) ObserveRun(stats gridplan.RunStats) {
	alg := stats.Algorithm.String()
	result := "not_found"
	if stats.Found {
		result = "found"
	}
	s.runs.WithLabelValues(alg, result).Inc()
	s.duration.WithLabelValues(alg).Observe(stats.Elapsed.Seconds())
	s.cpu.WithLabelValues(alg).Observe(stats.CPUTime.Seconds())
	s.expanded.WithLabelValues(alg).Observe(float64(stats.ExpandedNodes))
	s.alloc.WithLabelValues(alg).Observe(float64(stats.AllocBytes))
}
