// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

// Swarm Wrapped API
//
// @title Swarm Wrapped API
// @version 1.0
// @description Yearly check-in reports for Foursquare Swarm accounts.
// @description
// @description ## Authentication
// @description
// @description Report endpoints require the session cookie set by the OAuth flow.
// @description Visit `/login` to connect a Foursquare account. Shared report endpoints are public.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "RECONNECT_REQUIRED",
// @description     "message": "Human-readable error message"
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-02T12:00:00Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/swarmwrapped/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @BasePath /
// @schemes http https
//
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name swarm_session
// @description Session cookie set by /callback after a Foursquare login.
//
// @tag.name Reports
// @tag.description The connected visitor's wrapped report
//
// @tag.name Sharing
// @tag.description Read-only share links for published reports
//
// @tag.name Core
// @tag.description Session status and health
package main
