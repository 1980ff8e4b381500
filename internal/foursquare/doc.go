// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
Package foursquare talks to the Foursquare (Swarm) v2 API.

It provides two clients:

  - OAuthClient: builds the consent URL and exchanges authorization codes
  - Client: reads the user's profile and pages through their check-ins

Resilience:

Every Client request passes through a circuit breaker (sony/gobreaker/v2)
and a token-bucket limiter (golang.org/x/time/rate). HTTP 429 responses are
retried a bounded number of times, honoring Retry-After when present.

Errors:

  - ErrUnauthorized: the token was revoked or expired (401/403)
  - ErrRateLimited: 429 persisted after all retries
  - ErrTokenExchange: the authorization code could not be exchanged
  - ErrCircuitOpen: the breaker is rejecting calls
  - *APIError: any other non-2xx response

Usage:

	client := foursquare.NewClient(cfg.Foursquare)
	profile, err := client.Profile(ctx, token)
	checkins, err := client.Checkins(ctx, token, foursquare.YearWindow(2025), func(n int) {
	    log.Printf("fetched %d", n)
	})
*/
package foursquare
