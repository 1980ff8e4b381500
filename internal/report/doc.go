// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

// Package report turns a session's Foursquare token into a wrapped report.
//
// Generate fetches the profile and the year's check-ins, runs the analytics
// engine and caches the result per session. Concurrent requests for the same
// report share one fetch. Share snapshots a report under a random token for
// anonymous read-only viewing, and Forget drops everything a session owns.
// All state lives in a TTL cache; nothing is persisted.
package report
