package api

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/vertexcover/cover"
)

// Rejection reasons used as the reason label of vcover_rejected_requests_total.
const (
	reasonMalformed  = "malformed"
	reasonOutOfRange = "out_of_range"
)

// Metrics holds the evaluation collectors.
type Metrics struct {
	evaluations *prometheus.CounterVec
	duration    prometheus.Histogram
	unknown     prometheus.Counter
	anomalies   prometheus.Counter
	rejected    *prometheus.CounterVec
}

// NewMetrics registers the evaluation collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		evaluations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vcover_evaluations_total",
			Help: "Evaluated placements by outcome",
		}, []string{"outcome"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "vcover_evaluation_duration_seconds",
			Help:    "Time spent evaluating one placement, minimum-cover search included",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		unknown: f.NewCounter(prometheus.CounterOpts{
			Name: "vcover_optimum_unknown_total",
			Help: "Evaluations on graphs above the search limit",
		}),
		anomalies: f.NewCounter(prometheus.CounterOpts{
			Name: "vcover_anomalies_total",
			Help: "Valid placements smaller than the computed minimum",
		}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "vcover_rejected_requests_total",
			Help: "Evaluation requests rejected before evaluation",
		}, []string{"reason"}),
	}
}

func (m *Metrics) observe(res cover.EvaluationResult, elapsed time.Duration) {
	m.evaluations.WithLabelValues(res.Outcome.String()).Inc()
	m.duration.Observe(elapsed.Seconds())
	if res.Optimum == nil {
		m.unknown.Inc()
	}
	if res.Outcome == cover.AnomalousBetterThanOptimum {
		m.anomalies.Inc()
	}
}

func (m *Metrics) reject(reason string) {
	m.rejected.WithLabelValues(reason).Inc()
}
