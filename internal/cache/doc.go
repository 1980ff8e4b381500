// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
Package cache provides thread-safe in-memory caching with TTL support.

It holds generated wrapped reports and share snapshots so that repeated
views within a session do not re-fetch the user's check-in history.

# Overview

The cache provides:
  - Thread-safe concurrent access (sync.RWMutex)
  - Time-to-live (TTL) expiration, per entry or cache-wide default
  - Lazy expiration checking on Get
  - Prefix deletion so all entries owned by one session can be purged
  - Explicit CleanupExpired for a supervised janitor

# Key Layout

Keys are namespaced by owner so a session's data can be dropped at once:

	report:<session-id>:<hash of request>
	share:<token>

# Example

	c := cache.New(10 * time.Minute)
	c.Set(key, report)
	if v, ok := c.Get(key); ok {
	    report := v.(*models.Report)
	}
	c.DeletePrefix("report:" + sessionID + ":")

# Cleanup

New does not start a goroutine. Expired entries are removed lazily by Get
and in bulk by CleanupExpired, which the maintenance supervisor calls on a
fixed interval.
*/
package cache
