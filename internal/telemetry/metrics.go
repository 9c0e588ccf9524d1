package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the wayfinder gateway.
type Metrics struct {
	RequestTotal       *prometheus.CounterVec
	RequestDurationMs  *prometheus.HistogramVec
	UpstreamFailTotal  *prometheus.CounterVec
	SpeechOutcomeTotal *prometheus.CounterVec
	RateLimitHitTotal  *prometheus.CounterVec
}

// NewMetrics creates and registers all Prometheus metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		RequestTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wayfinder_request_total",
			Help: "Total number of requests processed by the gateway.",
		}, []string{"contract", "status"}),

		RequestDurationMs: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "wayfinder_request_duration_ms",
			Help:    "Total request duration in milliseconds (including upstream latency).",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000},
		}, []string{"contract"}),

		UpstreamFailTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wayfinder_upstream_failure_total",
			Help: "Total upstream completion failures by kind.",
		}, []string{"kind"}),

		SpeechOutcomeTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wayfinder_speech_outcome_total",
			Help: "Total speech recognition outcomes by kind.",
		}, []string{"kind"}),

		RateLimitHitTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "wayfinder_ratelimit_hit_total",
			Help: "Total requests rejected by rate limiting.",
		}, []string{"dimension"}),
	}
}

// RecordRequest records metrics for a completed pipeline request.
func (m *Metrics) RecordRequest(contract, status string, durationMs float64) {
	m.RequestTotal.WithLabelValues(contract, status).Inc()
	m.RequestDurationMs.WithLabelValues(contract).Observe(durationMs)
}

// RecordUpstreamFailure records one upstream completion failure.
func (m *Metrics) RecordUpstreamFailure(kind string) {
	m.UpstreamFailTotal.WithLabelValues(kind).Inc()
}

// RecordSpeechOutcome records one recognition outcome.
func (m *Metrics) RecordSpeechOutcome(kind string) {
	m.SpeechOutcomeTotal.WithLabelValues(kind).Inc()
}

// RecordRateLimitHit records a rejected request.
func (m *Metrics) RecordRateLimitHit(dimension string) {
	m.RateLimitHitTotal.WithLabelValues(dimension).Inc()
}
