// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
Package auth connects a visitor's Foursquare account and tracks the
resulting session.

There is exactly one session per connected visitor and one OAuth token per
session. Nothing is written to disk: both store backends live in memory and
every session disappears when it expires, when the visitor disconnects, or
when the process stops.

Key Components:

  - Session, SessionStore: the session record and its storage contract
  - MemorySessionStore: map-backed store returning deep copies
  - BadgerSessionStore: in-memory BadgerDB store with per-entry TTL
  - SessionManager: cookie handling, sliding expiry, RequireSession middleware
  - TokenEncryptor: AES-GCM encryption of the access token, key derived with HKDF
  - StateSigner: HS256 JWT state parameter bound to a nonce cookie
  - FlowHandlers: Login, Callback, Disconnect and Status handlers

OAuth Flow:

 1. GET /login issues a signed state, mirrors its nonce into a cookie and
    redirects to the Foursquare consent screen.
 2. GET /callback verifies the state against the cookie, exchanges the
    code, loads the profile and creates a session with a fresh ID. A
    session the visitor already held is purged along with its data.
 3. POST /logout purges the session's cached reports and share links,
    deletes the session and clears the cookie.

Security:

  - Session cookies are HttpOnly with SameSite=Lax; Secure is configurable
  - Access tokens are encrypted before they reach the store
  - Access tokens, codes and secrets are never logged
*/
package auth
