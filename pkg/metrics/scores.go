package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ScoreMetrics records timing and outcome counters for score computations.
type ScoreMetrics struct {
	duration *prometheus.HistogramVec
	success  *prometheus.CounterVec
	failure  *prometheus.CounterVec
}

// NewScoreMetrics registers the score computation metrics on the provided registerer.
func NewScoreMetrics(reg prometheus.Registerer) *ScoreMetrics {
	if reg == nil {
		return &ScoreMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "score_computation_duration_seconds",
		Help:    "Duration of user score computations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"stage"})
	success := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "score_computation_success",
		Help: "Successful score computations.",
	}, []string{"stage"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "score_computation_failure",
		Help: "Failed score computations.",
	}, []string{"stage"})
	reg.MustRegister(duration, success, failure)
	return &ScoreMetrics{
		duration: duration,
		success:  success,
		failure:  failure,
	}
}

// ObserveDuration records the duration for the named computation stage.
func (s *ScoreMetrics) ObserveDuration(stage string, duration time.Duration) {
	if s == nil || s.duration == nil {
		return
	}
	s.duration.WithLabelValues(normalizeLabel(stage)).Observe(duration.Seconds())
}

// IncSuccess increments the success counter for the named stage.
func (s *ScoreMetrics) IncSuccess(stage string) {
	if s == nil || s.success == nil {
		return
	}
	s.success.WithLabelValues(normalizeLabel(stage)).Inc()
}

// IncFailure increments the failure counter for the named stage.
func (s *ScoreMetrics) IncFailure(stage string) {
	if s == nil || s.failure == nil {
		return
	}
	s.failure.WithLabelValues(normalizeLabel(stage)).Inc()
}

func normalizeLabel(stage string) string {
	if stage == "" {
		return "unknown"
	}
	return stage
}
