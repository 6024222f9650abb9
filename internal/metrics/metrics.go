// Package metrics holds the service's Prometheus instruments, exposed on
// GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts handled HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// IntakesLogged counts durably recorded intake events.
	IntakesLogged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "intake_events_logged_total",
			Help: "Total number of intake events recorded",
		},
	)

	// AdvisoryFailures counts advisory calls that degraded to fallback
	// text.
	AdvisoryFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "advisory_failures_total",
			Help: "Total number of failed advisory feedback calls",
		},
	)
)
