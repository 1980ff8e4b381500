// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
Package api provides the HTTP surface: HTML pages, the JSON report API, the
progress websocket and operational endpoints, routed with chi.

Routes:

	GET  /                       landing page
	GET  /login, /callback       OAuth flow
	GET  /logout                 disconnect confirmation page
	POST /logout                 disconnect and purge
	GET  /generate               loading page driven by the progress stream
	GET  /wrapped                report page (session required)
	GET  /shared/{token}         read-only shared report page
	GET  /api/session            connection status
	GET  /api/report             report JSON (session required)
	GET  /api/report/map         report map points as GeoJSON
	GET  /api/report/progress    websocket progress stream
	POST /api/report/share       publish a share link
	GET  /api/shared/{token}     shared report JSON
	GET  /health                 liveness and circuit breaker state
	GET  /metrics                Prometheus metrics
	GET  /swagger/*              Swagger UI and /swagger/doc.json

JSON responses use the models.APIResponse envelope. Errors carry one of the
models.ErrCode* codes; RECONNECT_REQUIRED also revokes the session and
forgets its cached reports.
*/
package api
