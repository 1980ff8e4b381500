// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/swarmwrapped/internal/auth"
	"github.com/tomtom215/swarmwrapped/internal/foursquare"
	"github.com/tomtom215/swarmwrapped/internal/models"
	"github.com/tomtom215/swarmwrapped/internal/report"
)

// reportFailure is the client-facing form of a report generation error.
type reportFailure struct {
	Status  int
	Code    string
	Title   string
	Message string
}

// Reconnect reports whether the session's token is unusable and the visitor
// must go through the OAuth flow again.
func (f reportFailure) Reconnect() bool {
	return f.Code == models.ErrCodeReconnectRequired
}

// classifyReportError maps service, provider and session errors to a
// status, an APIError code and a message that is safe to show.
func classifyReportError(err error) reportFailure {
	switch {
	case errors.Is(err, report.ErrNoCheckins):
		return reportFailure{http.StatusNotFound, models.ErrCodeNoCheckins,
			"No check-ins found", "There are no check-ins to report for this year. Try another year."}
	case errors.Is(err, report.ErrShareNotFound):
		return reportFailure{http.StatusNotFound, models.ErrCodeNotFound,
			"Shared report not found", "This shared report does not exist or has expired."}
	case errors.Is(err, foursquare.ErrUnauthorized),
		errors.Is(err, auth.ErrNoAccessToken),
		errors.Is(err, auth.ErrDecryptionFailed):
		return reportFailure{http.StatusUnauthorized, models.ErrCodeReconnectRequired,
			"Reconnect required", "Your Foursquare connection has expired. Please reconnect to continue."}
	case errors.Is(err, foursquare.ErrRateLimited):
		return reportFailure{http.StatusTooManyRequests, models.ErrCodeRateLimited,
			"Foursquare is busy", "Foursquare is rate limiting requests. Please try again in a few minutes."}
	case errors.Is(err, foursquare.ErrCircuitOpen):
		return reportFailure{http.StatusServiceUnavailable, models.ErrCodeServiceUnavailable,
			"Foursquare is unavailable", "Foursquare is temporarily unavailable. Please try again shortly."}
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return reportFailure{http.StatusServiceUnavailable, models.ErrCodeServiceUnavailable,
			"Request timed out", "Fetching your check-ins took too long. Please try again."}
	}

	if _, ok := foursquare.IsAPIError(err); ok {
		return reportFailure{http.StatusBadGateway, models.ErrCodeUpstream,
			"Foursquare error", "Foursquare returned an error. Please try again."}
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return reportFailure{http.StatusBadGateway, models.ErrCodeUpstream,
			"Could not reach Foursquare", "Could not reach Foursquare. Please try again."}
	}
	return reportFailure{http.StatusInternalServerError, models.ErrCodeInternal,
		"Something went wrong", "Something went wrong while building your report. Please try again."}
}
