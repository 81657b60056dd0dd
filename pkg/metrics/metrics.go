package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors for the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BookingsCreated     prometheus.Counter
	BookingConflicts    prometheus.Counter
	VerificationsFailed prometheus.Counter
	NotifyFailures      prometheus.Counter
}

// New creates and registers the service metrics on the default registry.
func New(serviceName string) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "http_requests_total",
				Help:      "Count of HTTP requests by method, path and status code.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: serviceName,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency by method and path.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		BookingsCreated: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "bookings_created_total",
				Help:      "Count of successfully committed bookings.",
			},
		),
		BookingConflicts: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "booking_conflicts_total",
				Help:      "Count of bookings rejected because the slot was taken.",
			},
		),
		VerificationsFailed: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "verifications_failed_total",
				Help:      "Count of bookings rejected by the captcha verifier.",
			},
		),
		NotifyFailures: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: serviceName,
				Name:      "notify_failures_total",
				Help:      "Count of confirmation emails that could not be sent.",
			},
		),
	}

	prometheus.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BookingsCreated,
		m.BookingConflicts,
		m.VerificationsFailed,
		m.NotifyFailures,
	)

	return m
}

// The Inc helpers tolerate a nil receiver so callers need no enabled
// check at every call site.

func (m *Metrics) IncBookingCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

func (m *Metrics) IncBookingConflict() {
	if m == nil {
		return
	}
	m.BookingConflicts.Inc()
}

func (m *Metrics) IncVerificationFailed() {
	if m == nil {
		return
	}
	m.VerificationsFailed.Inc()
}

func (m *Metrics) IncNotifyFailure() {
	if m == nil {
		return
	}
	m.NotifyFailures.Inc()
}
