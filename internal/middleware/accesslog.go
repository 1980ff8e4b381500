// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package middleware

import (
	"net/http"
	"time"

	"github.com/tomtom215/swarmwrapped/internal/logging"
)

// DefaultSlowRequestThreshold is the duration above which requests are
// logged at warn level.
const DefaultSlowRequestThreshold = time.Second

// AccessLog logs one line per request through the context logger, so the
// request and correlation IDs set by RequestID are attached. Only the path
// is logged; query strings may carry OAuth codes.
func AccessLog(slowThreshold time.Duration) func(http.Handler) http.Handler {
	if slowThreshold <= 0 {
		slowThreshold = DefaultSlowRequestThreshold
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapper := newStatusRecorder(w)

			next.ServeHTTP(wrapper, r)

			duration := time.Since(start)
			log := logging.Ctx(r.Context())
			event := log.Debug()
			switch {
			case wrapper.statusCode >= http.StatusInternalServerError:
				event = log.Error()
			case duration > slowThreshold:
				event = log.Warn().Bool("slow", true)
			}
			event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("route", routePattern(r)).
				Int("status", wrapper.statusCode).
				Int64("duration_ms", duration.Milliseconds()).
				Msg("HTTP request")
		})
	}
}
