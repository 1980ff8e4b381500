// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package api

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/tomtom215/swarmwrapped/internal/audit"
	"github.com/tomtom215/swarmwrapped/internal/auth"
	"github.com/tomtom215/swarmwrapped/internal/config"
	"github.com/tomtom215/swarmwrapped/internal/logging"
	"github.com/tomtom215/swarmwrapped/internal/models"
	"github.com/tomtom215/swarmwrapped/internal/report"
	"github.com/tomtom215/swarmwrapped/internal/validation"
	"github.com/tomtom215/swarmwrapped/internal/web"
	ws "github.com/tomtom215/swarmwrapped/internal/websocket"
)

// BreakerReporter exposes the provider circuit breaker state for /health.
type BreakerReporter interface {
	BreakerState() string
}

// Handler contains dependencies for the page and API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, shared request helpers
//   - handlers_wrapped.go: report pages, report JSON, sharing
//   - handlers_progress.go: websocket progress stream
//   - handlers_spatial.go: GeoJSON map export
//   - handlers_health.go: health endpoint
type Handler struct {
	sessions  *auth.SessionManager
	reports   *report.Service
	renderer  *web.Renderer
	breaker   BreakerReporter
	audit     *audit.Logger
	upgrader  *websocket.Upgrader
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a new handler. breaker may be nil.
func NewHandler(sessions *auth.SessionManager, reports *report.Service, renderer *web.Renderer, breaker BreakerReporter, cfg *config.Config, version string) *Handler {
	return &Handler{
		sessions:  sessions,
		reports:   reports,
		renderer:  renderer,
		breaker:   breaker,
		upgrader:  ws.NewUpgrader(cfg.Security.CORSOrigins),
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}

// SetAuditLogger records revocations and share links to the audit trail.
func (h *Handler) SetAuditLogger(l *audit.Logger) {
	h.audit = l
}

// sessionActor identifies a session in audit events.
func sessionActor(session *auth.Session) audit.Actor {
	return audit.Actor{ID: session.UserID, Name: session.Username}
}

// reportRequest parses year and exclude_sensitive from the query string.
// A missing year resolves to the configured default year.
func (h *Handler) reportRequest(r *http.Request) (report.Request, *validation.RequestValidationError) {
	defaults := h.reports.DefaultRequest()
	q, verr := validation.ParseReportQuery(r.URL.Query().Get, defaults.ExcludeSensitive)
	if verr != nil {
		return report.Request{}, verr
	}
	req := report.Request{Year: q.Year, ExcludeSensitive: q.ExcludeSensitive}
	if req.Year == 0 {
		req.Year = defaults.Year
	}
	return req, nil
}

// accessToken decrypts the provider token of the request's session.
func (h *Handler) accessToken(r *http.Request) (*auth.Session, string, error) {
	session := auth.SessionFromContext(r.Context())
	if session == nil {
		return nil, "", auth.ErrSessionNotFound
	}
	token, err := h.sessions.AccessToken(session)
	if err != nil {
		return session, "", err
	}
	return session, token, nil
}

// dropSession revokes a session whose token no longer works and forgets
// everything cached for it.
func (h *Handler) dropSession(w http.ResponseWriter, r *http.Request, session *auth.Session) {
	if session == nil {
		return
	}
	purged := h.reports.Forget(session.ID)
	h.sessions.Revoke(r.Context(), w, session.ID)
	logging.Ctx(r.Context()).Info().
		Int("purged", purged).
		Msg("Session revoked after Foursquare rejected the token")
	h.audit.LogSessionRevoked(r.Context(), sessionActor(session), audit.SourceFromRequest(r), "provider rejected token")
}

// reportYears lists the years offered by the report page, newest first.
func reportYears(current int) []int {
	years := make([]int, 0, current-validation.FirstReportYear+1)
	for y := current; y >= validation.FirstReportYear; y-- {
		years = append(years, y)
	}
	return years
}

// unauthorizedJSON answers API requests that carry no valid session.
func unauthorizedJSON(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusUnauthorized, models.ErrCodeUnauthorized, "Connect your Foursquare account first.", nil)
}

// redirectToLogin sends page requests without a session into the OAuth flow.
func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/login", http.StatusFound)
}
