// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
Package middleware provides HTTP middleware for the chi router.

Key Components:

  - RequestID: UUID request IDs plus a correlation ID for the logging package
  - PrometheusMetrics: request count, duration and in-flight gauge, labeled by route pattern
  - AccessLog: one structured log line per request, warn level when slow
  - Compression: gzip for clients that accept it

All middleware has the chi signature func(http.Handler) http.Handler and
passes Hijack through, so the websocket progress stream works behind it.

Typical stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
*/
package middleware
