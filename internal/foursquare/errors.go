// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package foursquare

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the Foursquare clients.
var (
	// ErrUnauthorized means Foursquare rejected the access token (401/403).
	// The token was revoked or has expired and the user must reconnect.
	ErrUnauthorized = errors.New("foursquare: access token rejected")

	// ErrRateLimited means Foursquare kept answering 429 after all retries.
	ErrRateLimited = errors.New("foursquare: rate limit exceeded")

	// ErrTokenExchange means the authorization code could not be exchanged.
	ErrTokenExchange = errors.New("foursquare: token exchange failed")

	// ErrCircuitOpen means the circuit breaker is rejecting requests.
	ErrCircuitOpen = errors.New("foursquare: circuit breaker open")
)

// APIError is returned for any other non-2xx response. Type and Detail are
// taken from the meta.errorType and meta.errorDetail fields when present.
type APIError struct {
	StatusCode int
	Type       string
	Detail     string
}

func (e *APIError) Error() string {
	switch {
	case e.Type != "" && e.Detail != "":
		return fmt.Sprintf("foursquare: status %d: %s: %s", e.StatusCode, e.Type, e.Detail)
	case e.Type != "":
		return fmt.Sprintf("foursquare: status %d: %s", e.StatusCode, e.Type)
	default:
		return fmt.Sprintf("foursquare: unexpected status %d", e.StatusCode)
	}
}

// IsAPIError reports whether err wraps an *APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
