// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
Package config provides layered configuration loading for Swarm Wrapped.

Configuration is built with Koanf v2 from three layers, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file (CONFIG_PATH, or config.yaml in the working directory)
 3. Environment variables, mapped explicitly by envTransformFunc

Only mapped environment variables are read; anything else in the process
environment is ignored. A .env file, when present, is loaded into the process
environment by cmd/server before Load runs.

# Required Settings

	FOURSQUARE_CLIENT_ID       OAuth client ID from the Foursquare developer console
	FOURSQUARE_CLIENT_SECRET   OAuth client secret
	SESSION_SECRET             At least 16 characters; signs OAuth state and encrypts tokens

# Example

	cfg, err := config.Load()
	if err != nil {
	    logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	addr := cfg.Server.Address()

Config is immutable after Load and safe for concurrent reads.
*/
package config
