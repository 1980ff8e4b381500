// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	_ "github.com/tomtom215/swarmwrapped/docs" // Import generated swagger docs
	"github.com/tomtom215/swarmwrapped/internal/api"
	"github.com/tomtom215/swarmwrapped/internal/audit"
	"github.com/tomtom215/swarmwrapped/internal/auth"
	"github.com/tomtom215/swarmwrapped/internal/config"
	"github.com/tomtom215/swarmwrapped/internal/foursquare"
	"github.com/tomtom215/swarmwrapped/internal/logging"
	"github.com/tomtom215/swarmwrapped/internal/report"
	"github.com/tomtom215/swarmwrapped/internal/supervisor"
	"github.com/tomtom215/swarmwrapped/internal/supervisor/services"
	"github.com/tomtom215/swarmwrapped/internal/web"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

//nolint:gocyclo // Main initialization function with sequential setup steps
func main() {
	// A missing .env is normal in production
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Warn().Err(err).Msg("Failed to load .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("session_store", cfg.Session.Store).
		Str("redirect_uri", cfg.Foursquare.RedirectURI).
		Bool("exclude_sensitive_default", cfg.Report.ExcludeSensitive).
		Msg("Starting Swarm Wrapped")

	if cfg.IsWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin")
	}

	// === SESSIONS ===
	storeFactory, err := auth.NewSessionStoreFactory(auth.SessionStoreType(cfg.Session.Store))
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize session store")
	}
	defer func() {
		if err := storeFactory.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing session store")
		}
	}()

	encryptor, err := auth.NewTokenEncryptor(cfg.Session.Secret)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize token encryption")
	}
	states, err := auth.NewStateSigner(cfg.Session.Secret, auth.DefaultStateTTL)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize OAuth state signer")
	}
	sessions := auth.NewSessionManager(storeFactory.CreateStore(), encryptor, auth.SessionManagerConfigFrom(cfg.Session))

	auditLogger := audit.NewLogger(nil, audit.ConfigFrom(cfg.Security))
	defer func() {
		if err := auditLogger.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing audit logger")
		}
	}()

	// === FOURSQUARE ===
	client := foursquare.NewClient(cfg.Foursquare)
	oauth := foursquare.NewOAuthClient(cfg.Foursquare)

	// === REPORTS AND HTTP ===
	reports := report.NewService(client, cfg.Report, cfg.Server.PublicURL)

	renderer, err := web.NewRenderer()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to parse templates")
	}

	flowCfg := auth.DefaultFlowHandlersConfig()
	flowCfg.Audit = auditLogger
	flows := auth.NewFlowHandlers(oauth, client, sessions, states, reports, renderer.RenderError, flowCfg)

	handler := api.NewHandler(sessions, reports, renderer, client, cfg, version)
	handler.SetAuditLogger(auditLogger)
	router := api.NewRouter(handler, flows, sessions, api.NewChiMiddlewareFromConfig(cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	// === SUPERVISOR TREE ===
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	tree.AddMaintenanceService(services.NewJanitorService("session-janitor", cfg.Session.CleanupInterval, sessions.CleanupExpired))
	tree.AddMaintenanceService(services.NewJanitorService("cache-janitor", cfg.Session.CleanupInterval, func(ctx context.Context) (int, error) {
		removed := reports.Cache().CleanupExpired()
		removed += reports.PruneSessions(func(sessionID string) bool {
			return sessions.Exists(ctx, sessionID)
		})
		return removed, nil
	}))
	if cfg.Security.AuditEnabled {
		tree.AddMaintenanceService(services.NewJanitorService("audit-janitor", time.Hour, auditLogger.CleanupExpired))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// ServeBackground delivers exactly one error when the root supervisor returns
	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish...")
		serveErr = <-errCh
	case serveErr = <-errCh:
		stop()
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	// Drop whatever is still held in memory before exiting
	reports.Cache().Clear()
	logging.Info().Msg("Swarm Wrapped stopped gracefully")
}
