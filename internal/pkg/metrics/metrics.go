package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics contains the Prometheus collectors exposed by the service.
type Metrics struct {
	// HTTP traffic
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight prometheus.Gauge

	// Domain activity
	submissionsTotal  *prometheus.CounterVec
	submissionScores  prometheus.Histogram
	sessionOperations *prometheus.CounterVec
	uploadsTotal      *prometheus.CounterVec
}

// NewMetrics creates a Metrics instance with collectors registered on the
// default registry.
func NewMetrics() *Metrics {
	return &Metrics{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auditflow_http_requests_total",
				Help: "Total number of HTTP requests handled",
			},
			[]string{"method", "route", "status"},
		),

		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "auditflow_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 14), // 1ms to ~8s
			},
			[]string{"method", "route"},
		),

		requestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "auditflow_http_requests_in_flight",
				Help: "Current number of HTTP requests being served",
			},
		),

		submissionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auditflow_submissions_total",
				Help: "Total number of audit submissions by outcome",
			},
			[]string{"template_id", "outcome"},
		),

		submissionScores: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "auditflow_submission_score",
				Help:    "Distribution of compliance scores on scored submissions",
				Buckets: prometheus.LinearBuckets(0, 10, 11), // 0 to 100
			},
		),

		sessionOperations: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auditflow_session_operations_total",
				Help: "Total number of survey session operations",
			},
			[]string{"operation"},
		),

		uploadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "auditflow_uploads_total",
				Help: "Total number of attachment uploads",
			},
			[]string{"result"},
		),
	}
}

// Handler returns the scrape endpoint handler.
func (m *Metrics) Handler() http.Handler {
	return promhttp.Handler()
}

// RecordRequest records one handled HTTP request.
func (m *Metrics) RecordRequest(method, route string, status int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(method, route, statusClass(status)).Inc()
	m.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RequestStarted marks a request entering the handler chain. The returned
// function marks it finished.
func (m *Metrics) RequestStarted() func() {
	m.requestsInFlight.Inc()
	return m.requestsInFlight.Dec
}

// RecordSubmission records a finalized audit submission.
func (m *Metrics) RecordSubmission(templateID string, passed *bool, score *int) {
	outcome := "unscored"
	if passed != nil {
		outcome = "failed"
		if *passed {
			outcome = "passed"
		}
	}
	m.submissionsTotal.WithLabelValues(templateID, outcome).Inc()
	if score != nil {
		m.submissionScores.Observe(float64(*score))
	}
}

// RecordSessionOperation records a survey session operation by name.
func (m *Metrics) RecordSessionOperation(operation string) {
	m.sessionOperations.WithLabelValues(operation).Inc()
}

// RecordUpload records an attachment upload attempt.
func (m *Metrics) RecordUpload(err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.uploadsTotal.WithLabelValues(result).Inc()
}

func statusClass(status int) string {
	switch {
	case status >= 500:
		return "5xx"
	case status >= 400:
		return "4xx"
	case status >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
