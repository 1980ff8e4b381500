// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
Package audit keeps a short in-memory trail of security-relevant session
events: connects, failed connects, disconnects, revocations after the
provider rejects a token, and issued share links.

Events are written asynchronously to a bounded MemoryStore and dropped after
the configured retention by the maintenance janitor. They carry the
Foursquare user ID, client IP and request ID, never tokens or check-in data.

Usage:

	logger := audit.NewLogger(nil, audit.ConfigFrom(cfg.Security))
	defer logger.Close()

	logger.LogConnected(ctx, audit.Actor{ID: userID, Name: name}, audit.SourceFromRequest(r))
*/
package audit
