// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

// Package logging provides centralized zerolog-based structured logging for Swarm Wrapped.
//
// Every package logs through this one global logger, so request IDs,
// correlation IDs and output format stay consistent between the HTTP layer,
// the Foursquare client and the supervisor tree.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Msg("Server starting")
//	logging.Error().Err(err).Msg("Check-in fetch failed")
//
//	// With context (request and correlation IDs)
//	logging.Ctx(ctx).Info().Int("checkins", n).Msg("Report generated")
//
// # Configuration
//
// Environment Variables (read by the config package):
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller info (default: false)
//
// # Sensitive Values
//
// OAuth access tokens, authorization codes and the session secret must never
// reach a log line. Use Redact when a value has to be referenced at all:
//
//	logging.Debug().Str("token", logging.Redact(token)).Msg("Token stored")
//
// # Supervisor Integration
//
// NewSlogLogger returns a *slog.Logger backed by zerolog so that suture's
// event hook (via sutureslog) lands in the same log stream.
package logging
