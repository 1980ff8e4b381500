// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// setRequiredEnv sets the variables Validate requires.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FOURSQUARE_CLIENT_ID", "env-client")
	t.Setenv("FOURSQUARE_CLIENT_SECRET", "env-secret")
	t.Setenv("SESSION_SECRET", "a-very-long-session-secret")
	t.Setenv(ConfigPathEnvVar, "")
}

// chdirTemp moves into an empty directory so no stray config.yaml is picked up.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	setRequiredEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("FOURSQUARE_MAX_CHECKINS", "1000")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("EXCLUDE_SENSITIVE", "true")
	t.Setenv("UNRELATED_VARIABLE", "ignored")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error: %v", err)
	}

	if cfg.Foursquare.ClientID != "env-client" {
		t.Errorf("ClientID = %q, want env-client", cfg.Foursquare.ClientID)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Session.TTL != 2*time.Hour {
		t.Errorf("Session.TTL = %v, want 2h", cfg.Session.TTL)
	}
	if cfg.Foursquare.MaxCheckins != 1000 {
		t.Errorf("MaxCheckins = %d, want 1000", cfg.Foursquare.MaxCheckins)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v, want two trimmed origins", cfg.Security.CORSOrigins)
	}
	if !cfg.Report.ExcludeSensitive {
		t.Error("ExcludeSensitive = false, want true")
	}
	// Untouched defaults survive the env layer.
	if cfg.Foursquare.PageSize != 250 {
		t.Errorf("PageSize = %d, want 250", cfg.Foursquare.PageSize)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := chdirTemp(t)
	setRequiredEnv(t)

	path := filepath.Join(dir, "custom.yaml")
	content := []byte(`
server:
  port: 7000
report:
  default_year: 2024
  cache_ttl: 30m
logging:
  level: debug
  format: console
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error: %v", err)
	}

	if cfg.Server.Port != 7000 {
		t.Errorf("Port = %d, want 7000 from file", cfg.Server.Port)
	}
	if cfg.Report.DefaultYear != 2024 {
		t.Errorf("DefaultYear = %d, want 2024", cfg.Report.DefaultYear)
	}
	if cfg.Report.CacheTTL != 30*time.Minute {
		t.Errorf("CacheTTL = %v, want 30m", cfg.Report.CacheTTL)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn (env beats file)", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ValidationFailure(t *testing.T) {
	chdirTemp(t)
	setRequiredEnv(t)
	t.Setenv("SESSION_SECRET", "short")

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("expected validation error for short SESSION_SECRET")
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := map[string]string{
		"FOURSQUARE_CLIENT_ID": "foursquare.client_id",
		"SESSION_SECRET":       "session.secret",
		"REPORT_YEAR":          "report.default_year",
		"DISABLE_RATE_LIMIT":   "security.rate_limit_disabled",
		"log_level":            "logging.level",
		"PATH":                 "",
		"HOME":                 "",
	}
	for in, want := range tests {
		if got := envTransformFunc(in); got != want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", in, got, want)
		}
	}
}
