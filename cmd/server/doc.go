// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
Package main is the entry point for the Swarm Wrapped server.

Swarm Wrapped connects a visitor's Foursquare Swarm account over OAuth,
fetches one year of check-ins and renders a shareable "wrapped" report with
rankings, streaks, badges and a map. Nothing is written to disk: sessions,
reports and share links live in memory and expire.

# Application Architecture

	RootSupervisor ("swarmwrapped")
	├── APISupervisor ("api-layer")
	│   └── HTTP Server
	└── MaintenanceSupervisor ("maintenance-layer")
	    ├── session janitor (expired sessions)
	    ├── cache janitor (expired reports and share links)
	    └── audit janitor (events past retention)

Component initialization order:

 1. Environment: an optional .env file (godotenv)
 2. Configuration: Koanf v2 with defaults, config file and environment
 3. Logging: zerolog with JSON/console output modes
 4. Sessions: memory or in-memory BadgerDB store, AES-GCM token encryption, audit trail
 5. Foursquare: rate-limited API client with a circuit breaker, OAuth client
 6. Report service: fetch, analyze and cache per session
 7. HTTP: Chi router with middleware stack
 8. Supervisor Tree: Suture v4 process supervision

# Configuration

Required:

	FOURSQUARE_CLIENT_ID       OAuth client ID
	FOURSQUARE_CLIENT_SECRET   OAuth client secret
	SESSION_SECRET             32+ character secret for state signing and token encryption

See internal/config for the full list.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests and the janitors stop at their next select.
*/
package main
