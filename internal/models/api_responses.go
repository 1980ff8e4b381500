// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all JSON endpoints.
// It provides consistent structure for both successful and error responses.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "RECONNECT_REQUIRED",
//	    "message": "Your Foursquare authorization has expired"
//	  },
//	  "metadata": {"timestamp": "2026-01-02T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
//
// Fields:
//   - Timestamp: Server time when response was generated
//   - QueryTimeMS: Report generation time in milliseconds (0 if cached)
//   - Cached: Whether the report was served from the session cache
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - UNAUTHORIZED: No session
//   - RECONNECT_REQUIRED: Foursquare rejected the stored token
//   - NO_CHECKINS: The requested year has no check-ins
//   - RATE_LIMITED: Foursquare or local rate limit hit
//   - UPSTREAM_ERROR: Foursquare returned an error
//   - SERVICE_UNAVAILABLE: Circuit breaker open
//   - VALIDATION_ERROR: Invalid query parameters
//   - NOT_FOUND: Unknown share token
//   - INTERNAL_ERROR: Anything else
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes returned in APIError.Code.
const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeReconnectRequired  = "RECONNECT_REQUIRED"
	ErrCodeNoCheckins         = "NO_CHECKINS"
	ErrCodeRateLimited        = "RATE_LIMITED"
	ErrCodeUpstream           = "UPSTREAM_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// SessionStatus is returned by /api/session.
type SessionStatus struct {
	Connected bool   `json:"connected"`
	Username  string `json:"username,omitempty"`
}

// HealthStatus is returned by /health.
type HealthStatus struct {
	Status         string    `json:"status"`
	Version        string    `json:"version"`
	Uptime         float64   `json:"uptime_seconds"`
	CircuitBreaker string    `json:"circuit_breaker"`
	Timestamp      time.Time `json:"timestamp"`
}
