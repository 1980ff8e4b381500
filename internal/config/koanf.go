// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/swarmwrapped/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with all default values.
func defaultConfig() *Config {
	return &Config{
		Foursquare: FoursquareConfig{
			RedirectURI:       "http://localhost:8000/callback",
			AuthURL:           "https://foursquare.com/oauth2/authenticate",
			TokenURL:          "https://foursquare.com/oauth2/access_token",
			APIBaseURL:        "https://api.foursquare.com/v2",
			APIVersion:        "20231201",
			PageSize:          250,
			MaxCheckins:       5000,
			RequestsPerSecond: 5,
			MaxRetries:        3,
			Timeout:           30 * time.Second,
		},
		Session: SessionConfig{
			Store:           "memory",
			TTL:             24 * time.Hour,
			CookieName:      "swarm_session",
			CookieSecure:    false,
			CleanupInterval: 5 * time.Minute,
		},
		Report: ReportConfig{
			DefaultYear:      0,
			ExcludeSensitive: false,
			CacheTTL:         10 * time.Minute,
			ShareTTL:         7 * 24 * time.Hour,

			GenerationTimeout: 2 * time.Minute,
		},
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8000,
			Timeout: 60 * time.Second,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{},
			RateLimitReqs:     120,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			AuditEnabled:      true,
			AuditRetention:    7 * 24 * time.Hour,
			AuditLogToStdout:  false,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: Optional YAML config file (if exists)
//  3. Environment Variables: Override any setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// FOURSQUARE_CLIENT_ID -> foursquare.client_id
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none is found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths defines which config paths are parsed as comma-separated slices.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Foursquare
	"foursquare_client_id":           "foursquare.client_id",
	"foursquare_client_secret":       "foursquare.client_secret",
	"foursquare_redirect_uri":        "foursquare.redirect_uri",
	"foursquare_auth_url":            "foursquare.auth_url",
	"foursquare_token_url":           "foursquare.token_url",
	"foursquare_api_base_url":        "foursquare.api_base_url",
	"foursquare_api_version":         "foursquare.api_version",
	"foursquare_page_size":           "foursquare.page_size",
	"foursquare_max_checkins":        "foursquare.max_checkins",
	"foursquare_requests_per_second": "foursquare.requests_per_second",
	"foursquare_max_retries":         "foursquare.max_retries",
	"foursquare_timeout":             "foursquare.timeout",

	// Session
	"session_secret":           "session.secret",
	"session_store":            "session.store",
	"session_ttl":              "session.ttl",
	"session_cookie_name":      "session.cookie_name",
	"session_cookie_secure":    "session.cookie_secure",
	"session_cleanup_interval": "session.cleanup_interval",

	// Report
	"report_year":       "report.default_year",
	"exclude_sensitive": "report.exclude_sensitive",
	"report_cache_ttl":  "report.cache_ttl",
	"share_ttl":         "report.share_ttl",

	"report_generation_timeout": "report.generation_timeout",

	// Server
	"http_host":    "server.host",
	"http_port":    "server.port",
	"http_timeout": "server.timeout",
	"public_url":   "server.public_url",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"audit_enabled":       "security.audit_enabled",
	"audit_retention":     "security.audit_retention",
	"audit_log_stdout":    "security.audit_log_stdout",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped keys return "" so koanf skips them.
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}
	return ""
}
