// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
//
// Configuration Categories:
//
//  1. Provider: Foursquare OAuth credentials and API client behavior
//  2. Session: cookie, lifetime and in-memory store selection
//  3. Report: default year, report cache and share link lifetimes
//  4. Server / Security: HTTP listener, CORS and request rate limiting
//  5. Logging: level and output format
type Config struct {
	Foursquare FoursquareConfig `koanf:"foursquare"`
	Session    SessionConfig    `koanf:"session"`
	Report     ReportConfig     `koanf:"report"`
	Server     ServerConfig     `koanf:"server"`
	Security   SecurityConfig   `koanf:"security"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// FoursquareConfig holds OAuth and API settings for the check-in provider.
type FoursquareConfig struct {
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
	RedirectURI  string `koanf:"redirect_uri"`

	// AuthURL and TokenURL are the OAuth 2.0 endpoints. Overridable for tests.
	AuthURL  string `koanf:"auth_url"`
	TokenURL string `koanf:"token_url"`

	// APIBaseURL is the v2 API root, e.g. https://api.foursquare.com/v2
	APIBaseURL string `koanf:"api_base_url"`

	// APIVersion is sent as the "v" query parameter (YYYYMMDD).
	APIVersion string `koanf:"api_version"`

	// PageSize is the number of check-ins requested per page (max 250).
	PageSize int `koanf:"page_size"`

	// MaxCheckins caps the number of check-ins fetched for one report.
	MaxCheckins int `koanf:"max_checkins"`

	// RequestsPerSecond paces outbound API calls. Burst equals the ceiling of this value.
	RequestsPerSecond float64 `koanf:"requests_per_second"`

	// MaxRetries bounds retries of rate-limited (429) responses.
	MaxRetries int `koanf:"max_retries"`

	Timeout time.Duration `koanf:"timeout"`
}

// SessionConfig controls browser sessions.
type SessionConfig struct {
	// Secret signs the OAuth state parameter and derives the token encryption key.
	Secret string `koanf:"secret"`

	// Store selects the session backend: "memory" or "badger" (in-memory BadgerDB).
	Store string `koanf:"store"`

	TTL             time.Duration `koanf:"ttl"`
	CookieName      string        `koanf:"cookie_name"`
	CookieSecure    bool          `koanf:"cookie_secure"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// ReportConfig controls report generation.
type ReportConfig struct {
	// DefaultYear is the year reported when the request omits one. 0 means the current year.
	DefaultYear int `koanf:"default_year"`

	// ExcludeSensitive is the default for the privacy filter.
	ExcludeSensitive bool `koanf:"exclude_sensitive"`

	CacheTTL time.Duration `koanf:"cache_ttl"`
	ShareTTL time.Duration `koanf:"share_ttl"`

	// GenerationTimeout bounds one fetch and analysis pass. The pass is
	// shared by every request waiting on the same report.
	GenerationTimeout time.Duration `koanf:"generation_timeout"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`

	// PublicURL is the externally visible base URL used in share links.
	// Empty means share links are relative.
	PublicURL string `koanf:"public_url"`
}

// SecurityConfig holds CORS, rate limit and audit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// Audit trail of connect, disconnect and share events, kept in memory.
	AuditEnabled     bool          `koanf:"audit_enabled"`
	AuditRetention   time.Duration `koanf:"audit_retention"`
	AuditLogToStdout bool          `koanf:"audit_log_stdout"`
}

// LoggingConfig holds logging settings passed to logging.Init.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Address returns the host:port listen address.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ReportYear resolves the configured default year against now.
func (r ReportConfig) ReportYear(now time.Time) int {
	if r.DefaultYear > 0 {
		return r.DefaultYear
	}
	return now.Year()
}

// Load reads configuration from defaults, an optional config file and the environment.
// See LoadWithKoanf for the layering rules.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
