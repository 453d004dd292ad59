package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Service provides Prometheus metrics for the checkout client
type Service struct {
	requestsTotal            *prometheus.CounterVec
	requestDuration          *prometheus.HistogramVec
	signaturesGeneratedTotal prometheus.Counter
	validationFailuresTotal  *prometheus.CounterVec
	apiErrorsTotal           *prometheus.CounterVec
}

// NewService creates a new metrics service
func NewService() *Service {
	return &Service{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_client_requests_total",
				Help: "Total number of PSP requests by operation and status",
			},
			[]string{"operation", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "checkout_client_request_duration_seconds",
				Help:    "PSP request round-trip time in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation", "status"},
		),
		signaturesGeneratedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "checkout_client_signatures_generated_total",
				Help: "Total number of request signatures generated",
			},
		),
		validationFailuresTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_client_validation_failures_total",
				Help: "Payload validation failures by error kind",
			},
			[]string{"kind"},
		),
		apiErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "checkout_client_api_errors_total",
				Help: "Non-2xx PSP responses by operation and status code",
			},
			[]string{"operation", "status_code"},
		),
	}
}

// RecordRequest records a completed PSP request
func (s *Service) RecordRequest(operation, status string) {
	s.requestsTotal.WithLabelValues(operation, status).Inc()
}

// RecordRequestDuration records PSP request round-trip time
func (s *Service) RecordRequestDuration(operation, status string, duration time.Duration) {
	s.requestDuration.WithLabelValues(operation, status).Observe(duration.Seconds())
}

// RecordSignatureGenerated records a request signature generation
func (s *Service) RecordSignatureGenerated() {
	s.signaturesGeneratedTotal.Inc()
}

// RecordValidationFailure records a payload validation failure
func (s *Service) RecordValidationFailure(kind string) {
	s.validationFailuresTotal.WithLabelValues(kind).Inc()
}

// RecordAPIError records a non-2xx PSP response
func (s *Service) RecordAPIError(operation, statusCode string) {
	s.apiErrorsTotal.WithLabelValues(operation, statusCode).Inc()
}
