package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// BenchMetrics holds the Prometheus collectors a ldpcbench run reports
// through.
type BenchMetrics struct {
	registry *prometheus.Registry

	decodesTotal     *prometheus.CounterVec // labels: domain, result ("converged"/"best_effort")
	decodeIterations *prometheus.HistogramVec
	decodeScore      *prometheus.GaugeVec // last best-so-far score, labels: domain, ebn0_db
}

// NewBenchMetrics registers a fresh set of collectors on a private
// registry rather than the process-wide default one, since ldpcbench may
// run several sweeps in one process during tests.
func NewBenchMetrics() *BenchMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &BenchMetrics{
		registry: reg,
		decodesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ldpcbench_decodes_total",
				Help: "Total decode attempts, by domain and outcome.",
			},
			[]string{"domain", "result"},
		),
		decodeIterations: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ldpcbench_decode_iterations",
				Help:    "Iterations consumed before a decode converged or gave up.",
				Buckets: prometheus.LinearBuckets(0, 5, 10),
			},
			[]string{"domain"},
		),
		decodeScore: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "ldpcbench_decode_score",
				Help: "Best-so-far parity-check score (0..83) of the most recent decode.",
			},
			[]string{"domain", "ebn0_db"},
		),
	}
}

// RecordDecode updates the run's collectors with the outcome of a single
// decode attempt.
func (m *BenchMetrics) RecordDecode(domain string, ebN0dB float64, iterations, score int, converged bool) {
	result := "best_effort"
	if converged {
		result = "converged"
	}
	m.decodesTotal.WithLabelValues(domain, result).Inc()
	m.decodeIterations.WithLabelValues(domain).Observe(float64(iterations))
	m.decodeScore.WithLabelValues(domain, fmt.Sprintf("%.1f", ebN0dB)).Set(float64(score))
}

// Push sends every collected metric to a Prometheus Pushgateway, grouped
// by the run's UUID so sweeps from different runs stay distinguishable.
func (m *BenchMetrics) Push(pushURL, jobName, runID string) error {
	if pushURL == "" {
		return fmt.Errorf("metrics.push_url is empty")
	}
	return push.New(pushURL, jobName).
		Gatherer(m.registry).
		Grouping("run_id", runID).
		Push()
}
