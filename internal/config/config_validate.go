// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	minSessionSecretLength = 16
	maxPageSize            = 250

	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

// Validate checks that required configuration is present and valid.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateFoursquare,
		c.validateSession,
		c.validateReport,
		c.validateServer,
		c.validateRateLimits,
		c.validateAudit,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateFoursquare() error {
	fs := c.Foursquare
	if fs.ClientID == "" {
		return fmt.Errorf("FOURSQUARE_CLIENT_ID is required")
	}
	if fs.ClientSecret == "" {
		return fmt.Errorf("FOURSQUARE_CLIENT_SECRET is required")
	}
	for name, raw := range map[string]string{
		"FOURSQUARE_REDIRECT_URI": fs.RedirectURI,
		"FOURSQUARE_AUTH_URL":     fs.AuthURL,
		"FOURSQUARE_TOKEN_URL":    fs.TokenURL,
		"FOURSQUARE_API_BASE_URL": fs.APIBaseURL,
	} {
		if err := validateAbsoluteURL(name, raw); err != nil {
			return err
		}
	}
	if fs.PageSize < 1 || fs.PageSize > maxPageSize {
		return fmt.Errorf("FOURSQUARE_PAGE_SIZE must be between 1 and %d", maxPageSize)
	}
	if fs.MaxCheckins < 1 {
		return fmt.Errorf("FOURSQUARE_MAX_CHECKINS must be positive")
	}
	if fs.RequestsPerSecond <= 0 {
		return fmt.Errorf("FOURSQUARE_REQUESTS_PER_SECOND must be positive")
	}
	if fs.MaxRetries < 0 {
		return fmt.Errorf("FOURSQUARE_MAX_RETRIES must not be negative")
	}
	if fs.Timeout <= 0 {
		return fmt.Errorf("FOURSQUARE_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateSession() error {
	if len(c.Session.Secret) < minSessionSecretLength {
		return fmt.Errorf("SESSION_SECRET must be at least %d characters", minSessionSecretLength)
	}
	switch c.Session.Store {
	case "memory", "badger":
	default:
		return fmt.Errorf("SESSION_STORE must be one of: memory, badger")
	}
	if c.Session.TTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	if c.Session.CookieName == "" {
		return fmt.Errorf("SESSION_COOKIE_NAME must not be empty")
	}
	if c.Session.CleanupInterval <= 0 {
		return fmt.Errorf("SESSION_CLEANUP_INTERVAL must be positive")
	}
	return nil
}

func (c *Config) validateReport() error {
	if c.Report.DefaultYear != 0 && (c.Report.DefaultYear < 2009 || c.Report.DefaultYear > 2100) {
		return fmt.Errorf("REPORT_YEAR must be 0 (current year) or between 2009 and 2100")
	}
	if c.Report.CacheTTL <= 0 {
		return fmt.Errorf("REPORT_CACHE_TTL must be positive")
	}
	if c.Report.ShareTTL <= 0 {
		return fmt.Errorf("SHARE_TTL must be positive")
	}
	if c.Report.GenerationTimeout <= 0 {
		return fmt.Errorf("REPORT_GENERATION_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.PublicURL != "" {
		return validateAbsoluteURL("PUBLIC_URL", c.Server.PublicURL)
	}
	return nil
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateAudit() error {
	if c.Security.AuditEnabled && c.Security.AuditRetention < time.Hour {
		return fmt.Errorf("AUDIT_RETENTION must be at least 1h")
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true, "debug": true, "info": true, "warn": true, "warning": true, "error": true,
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func validateAbsoluteURL(name, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", name, raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must use http or https", name)
	}
	return nil
}

// IsWildcardCORS reports whether any configured CORS origin is "*".
func (c *Config) IsWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
