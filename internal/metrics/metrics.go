// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Foursquare Provider Metrics
	FoursquareRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foursquare_requests_total",
			Help: "Total number of Foursquare API requests",
		},
		[]string{"endpoint", "status"},
	)

	FoursquareRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foursquare_request_duration_seconds",
			Help:    "Foursquare API request duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	FoursquareRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foursquare_retries_total",
			Help: "Total number of Foursquare API retries after rate limiting",
		},
		[]string{"endpoint"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// Wrapped Report Metrics
var (
	WrappedReportGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wrapped_report_generation_duration_seconds",
			Help:    "Duration of wrapped report generation in seconds, including the check-in fetch",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"year"},
	)

	WrappedReportsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wrapped_reports_generated_total",
			Help: "Total number of wrapped reports generated",
		},
		[]string{"year"},
	)

	WrappedReportGenerationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wrapped_report_generation_errors_total",
			Help: "Total number of wrapped report generation errors",
		},
		[]string{"year", "error_type"},
	)

	WrappedReportCheckins = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wrapped_report_checkins",
			Help:    "Number of check-ins analyzed per generated report",
			Buckets: []float64{0, 10, 50, 100, 250, 500, 1000, 2500, 5000},
		},
	)

	WrappedReportCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wrapped_report_cache_hits_total",
			Help: "Total number of wrapped report cache hits",
		},
		[]string{"year"},
	)

	WrappedReportCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wrapped_report_cache_misses_total",
			Help: "Total number of wrapped report cache misses",
		},
		[]string{"year"},
	)

	WrappedShareTokensCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wrapped_share_tokens_created_total",
			Help: "Total number of share tokens created for wrapped reports",
		},
	)

	WrappedShareTokenAccess = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wrapped_share_token_access_total",
			Help: "Total number of wrapped report accesses via share tokens",
		},
	)
)

// Session Metrics
var (
	SessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "sessions_active",
			Help: "Number of sessions currently held in memory",
		},
	)

	SessionsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "sessions_created_total",
			Help: "Total number of sessions created after a successful OAuth callback",
		},
	)

	SessionsDestroyed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sessions_destroyed_total",
			Help: "Total number of sessions destroyed",
		},
		[]string{"reason"}, // reason: "disconnect", "expired", "revoked"
	)
)

// RecordAPIRequest records an API request metric.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordFoursquareRequest records one outbound API call.
// status is the HTTP status code, or "error" for transport failures.
func RecordFoursquareRequest(endpoint, status string, duration time.Duration) {
	FoursquareRequestsTotal.WithLabelValues(endpoint, status).Inc()
	FoursquareRequestDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

// RecordFoursquareRetry records a retry after a rate-limited response.
func RecordFoursquareRetry(endpoint string) {
	FoursquareRetries.WithLabelValues(endpoint).Inc()
}

// RecordWrappedGeneration records a report generation attempt.
// errorType is ignored when err is nil.
func RecordWrappedGeneration(year int, duration time.Duration, errorType string, err error) {
	yearStr := strconv.Itoa(year)
	WrappedReportGenerationDuration.WithLabelValues(yearStr).Observe(duration.Seconds())
	if err != nil {
		if errorType == "" {
			errorType = "unknown"
		}
		WrappedReportGenerationErrors.WithLabelValues(yearStr, errorType).Inc()
		return
	}
	WrappedReportsGenerated.WithLabelValues(yearStr).Inc()
}

// RecordWrappedCheckins records the size of an analyzed check-in history.
func RecordWrappedCheckins(n int) {
	WrappedReportCheckins.Observe(float64(n))
}

// RecordWrappedCacheHit records a cache hit for wrapped report retrieval.
func RecordWrappedCacheHit(year int) {
	WrappedReportCacheHits.WithLabelValues(strconv.Itoa(year)).Inc()
}

// RecordWrappedCacheMiss records a cache miss for wrapped report retrieval.
func RecordWrappedCacheMiss(year int) {
	WrappedReportCacheMisses.WithLabelValues(strconv.Itoa(year)).Inc()
}

// RecordWrappedShareTokenCreated records creation of a share token.
func RecordWrappedShareTokenCreated() {
	WrappedShareTokensCreated.Inc()
}

// RecordWrappedShareAccess records access via a share token.
func RecordWrappedShareAccess() {
	WrappedShareTokenAccess.Inc()
}

// RecordSessionCreated records a new session.
func RecordSessionCreated() {
	SessionsCreated.Inc()
	SessionsActive.Inc()
}

// RecordSessionDestroyed records removal of n sessions for the given reason.
func RecordSessionDestroyed(reason string, n int) {
	if n <= 0 {
		return
	}
	SessionsDestroyed.WithLabelValues(reason).Add(float64(n))
	SessionsActive.Sub(float64(n))
}
