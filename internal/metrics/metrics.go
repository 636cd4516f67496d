// Package metrics holds the service's Prometheus collectors, registered
// on the default registry and exposed by the metrics router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RunsSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "topsis_runs_submitted_total",
		Help: "Ranking runs accepted for processing.",
	})

	RunsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "topsis_runs_completed_total",
		Help: "Ranking runs that produced a result file.",
	})

	RunsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "topsis_runs_failed_total",
		Help: "Ranking runs that failed, by error kind.",
	}, []string{"kind"})

	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "topsis_run_duration_seconds",
		Help:    "Wall time of one ranking run, load to emit.",
		Buckets: prometheus.DefBuckets,
	})
)
