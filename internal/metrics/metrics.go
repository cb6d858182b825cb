package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const unmatchedRoute = "unmatched"

// Auth failure reasons.
const (
	ReasonMissingToken       = "missing_token"
	ReasonInvalidToken       = "invalid_token"
	ReasonInvalidCredentials = "invalid_credentials"
	ReasonRateLimited        = "rate_limited"
)

var (
	requestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	authFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "expense_auth_failures_total",
			Help: "Rejected authentication attempts by reason",
		},
		[]string{"reason"},
	)
)

// RecordRequest stores duration and count of a served request. route is the
// router template, e.g. /expenses/:id, so ids never become label values.
func RecordRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = unmatchedRoute
	}
	code := strconv.Itoa(status)
	requestTotal.WithLabelValues(method, route, code).Inc()
	requestDuration.WithLabelValues(method, route, code).Observe(duration.Seconds())
}

// RecordAuthFailure counts a rejected login or token.
func RecordAuthFailure(reason string) {
	authFailures.WithLabelValues(reason).Inc()
}
