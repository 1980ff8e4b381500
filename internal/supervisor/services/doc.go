// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

// Package services adapts application components to suture.Service.
//
//   - HTTPServerService: an *http.Server with graceful shutdown
//   - JanitorService: a periodic cleanup loop
package services
