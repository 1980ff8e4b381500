// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered on the default registry via promauto and are
served at /metrics by the API router.

# Available Metrics

HTTP Metrics:
  - api_requests_total: Total HTTP requests (counter). Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram). Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Provider Metrics:
  - foursquare_requests_total: Outbound API calls (counter). Labels: endpoint, status
  - foursquare_request_duration_seconds: Outbound latency (histogram). Labels: endpoint
  - foursquare_retries_total: Rate-limit retries (counter). Labels: endpoint
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge). Labels: name
  - circuit_breaker_requests_total: Labels: name, result
  - circuit_breaker_state_transitions_total: Labels: name, from_state, to_state

Report Metrics:
  - wrapped_report_generation_duration_seconds: Labels: year
  - wrapped_reports_generated_total: Labels: year
  - wrapped_report_generation_errors_total: Labels: year, error_type
  - wrapped_report_checkins: Check-ins per generated report (histogram)
  - wrapped_report_cache_hits_total / wrapped_report_cache_misses_total: Labels: year
  - wrapped_share_tokens_created_total, wrapped_share_token_access_total

Session Metrics:
  - sessions_active: Sessions currently held in memory (gauge)
  - sessions_created_total, sessions_destroyed_total: Labels: reason
*/
package metrics
