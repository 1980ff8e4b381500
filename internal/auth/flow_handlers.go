// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/swarmwrapped/internal/audit"
	"github.com/tomtom215/swarmwrapped/internal/logging"
	"github.com/tomtom215/swarmwrapped/internal/models"
)

// OAuthProvider is the authorization-code half of the provider client.
type OAuthProvider interface {
	AuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
}

// ProfileFetcher loads the connected user's profile.
type ProfileFetcher interface {
	Profile(ctx context.Context, token string) (*models.Profile, error)
}

// DataPurger drops everything held in memory on behalf of a session.
type DataPurger interface {
	Forget(sessionID string) int
}

// ErrorRenderer writes a user-facing error page. Pages always offer a way
// back into the connect flow.
type ErrorRenderer func(w http.ResponseWriter, r *http.Request, status int, title, message string)

// FlowHandlers provides the HTTP handlers for the Foursquare OAuth flow.
type FlowHandlers struct {
	oauth    OAuthProvider
	profiles ProfileFetcher
	sessions *SessionManager
	states   *StateSigner
	purger   DataPurger
	render   ErrorRenderer
	config   *FlowHandlersConfig
}

// FlowHandlersConfig holds configuration for the flow handlers.
type FlowHandlersConfig struct {
	// PostLoginRedirect is where the callback sends a connected visitor.
	PostLoginRedirect string

	// PostLogoutRedirect is where Disconnect sends the visitor.
	PostLogoutRedirect string

	// Audit receives connect and disconnect events. May be nil.
	Audit *audit.Logger
}

// DefaultFlowHandlersConfig returns sensible defaults.
func DefaultFlowHandlersConfig() *FlowHandlersConfig {
	return &FlowHandlersConfig{
		PostLoginRedirect:  "/wrapped",
		PostLogoutRedirect: "/",
	}
}

// NewFlowHandlers creates a new FlowHandlers instance.
//
// Parameters:
//   - oauth: authorization URL builder and code exchanger
//   - profiles: profile lookup used to name the session
//   - sessions: session manager for cookies and storage
//   - states: signer for the OAuth state parameter
//   - purger: report service that forgets a session's cached data (may be nil)
//   - render: user-facing error page renderer (plain text when nil)
//   - config: handler configuration (uses defaults if nil)
func NewFlowHandlers(
	oauth OAuthProvider,
	profiles ProfileFetcher,
	sessions *SessionManager,
	states *StateSigner,
	purger DataPurger,
	render ErrorRenderer,
	config *FlowHandlersConfig,
) *FlowHandlers {
	if config == nil {
		config = DefaultFlowHandlersConfig()
	}
	if render == nil {
		render = plainErrorRenderer
	}
	return &FlowHandlers{
		oauth:    oauth,
		profiles: profiles,
		sessions: sessions,
		states:   states,
		purger:   purger,
		render:   render,
		config:   config,
	}
}

// plainErrorRenderer is the fallback used when no HTML renderer is wired.
func plainErrorRenderer(w http.ResponseWriter, _ *http.Request, status int, title, message string) {
	http.Error(w, title+": "+message+" Try again at /login", status)
}

// Login redirects the visitor to the Foursquare consent screen.
// GET /login
func (h *FlowHandlers) Login(w http.ResponseWriter, r *http.Request) {
	state, nonce, err := h.states.Issue()
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to issue OAuth state")
		h.render(w, r, http.StatusInternalServerError, "Something went wrong",
			"We couldn't start the connection to Foursquare.")
		return
	}

	h.sessions.SetStateCookie(w, nonce, h.states.TTL())
	http.Redirect(w, r, h.oauth.AuthorizationURL(state), http.StatusFound)
}

// Callback completes the authorization-code flow.
// GET /callback?code=...&state=...
func (h *FlowHandlers) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()
	log := logging.Ctx(ctx)

	if providerErr := query.Get("error"); providerErr != "" {
		h.sessions.ClearStateCookie(w)
		log.Info().Str("error", providerErr).Msg("OAuth authorization denied")
		h.config.Audit.LogConnectFailed(ctx, audit.SourceFromRequest(r), "authorization denied")
		h.render(w, r, http.StatusForbidden, "Connection denied",
			"Foursquare access was not granted, so there is nothing to wrap yet.")
		return
	}

	code := query.Get("code")
	if code == "" {
		h.render(w, r, http.StatusBadRequest, "Missing authorization code",
			"The response from Foursquare did not include an authorization code.")
		return
	}

	if err := h.states.Verify(query.Get("state"), h.sessions.StateNonce(r)); err != nil {
		h.sessions.ClearStateCookie(w)
		log.Warn().Err(err).Msg("OAuth state rejected")
		h.config.Audit.LogConnectFailed(ctx, audit.SourceFromRequest(r), "state rejected")
		h.render(w, r, http.StatusBadRequest, "Login expired",
			"This login link is no longer valid.")
		return
	}
	h.sessions.ClearStateCookie(w)

	start := time.Now()
	token, err := h.oauth.ExchangeCode(ctx, code)
	if err != nil {
		log.Error().Err(err).Msg("Failed to exchange authorization code")
		h.config.Audit.LogConnectFailed(ctx, audit.SourceFromRequest(r), "code exchange failed")
		h.render(w, r, http.StatusBadGateway, "Couldn't connect to Foursquare",
			"The authorization code could not be exchanged for an access token.")
		return
	}

	profile, err := h.profiles.Profile(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch Foursquare profile")
		h.config.Audit.LogConnectFailed(ctx, audit.SourceFromRequest(r), "profile fetch failed")
		h.render(w, r, http.StatusBadGateway, "Couldn't load your profile",
			"Foursquare did not return your profile.")
		return
	}

	previousID := h.sessions.sessionIDFromCookie(r)
	session, err := h.sessions.Create(ctx, w, r, profile, token)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create session")
		h.config.Audit.LogConnectFailed(ctx, audit.SourceFromRequest(r), "session creation failed")
		h.render(w, r, http.StatusInternalServerError, "Something went wrong",
			"Your session could not be created.")
		return
	}

	// The replaced session's reports and share links go with it
	if previousID != "" && previousID != session.ID && h.purger != nil {
		purged := h.purger.Forget(previousID)
		log.Debug().Int("entries", purged).Msg("Purged replaced session data")
	}

	log.Info().
		Str("user_id", session.UserID).
		Dur("duration", time.Since(start)).
		Msg("Foursquare account connected")
	h.config.Audit.LogConnected(ctx, audit.Actor{ID: session.UserID, Name: session.Username}, audit.SourceFromRequest(r))

	http.Redirect(w, r, h.config.PostLoginRedirect, http.StatusFound)
}

// Disconnect destroys the session and every report and share link it owns.
// POST /logout
func (h *FlowHandlers) Disconnect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := h.sessions.sessionIDFromCookie(r)

	var actor audit.Actor
	if session, err := h.sessions.Current(r); err == nil {
		actor = audit.Actor{ID: session.UserID, Name: session.Username}
	}

	purged := 0
	if sessionID != "" && h.purger != nil {
		purged = h.purger.Forget(sessionID)
		logging.Ctx(ctx).Debug().Int("entries", purged).Msg("Purged session data")
	}

	if err := h.sessions.Destroy(ctx, w, sessionID); err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to destroy session")
	}
	if actor.ID != "" {
		h.config.Audit.LogDisconnected(ctx, actor, audit.SourceFromRequest(r), purged)
	}

	http.Redirect(w, r, h.config.PostLogoutRedirect, http.StatusFound)
}

// Status reports whether the visitor is connected.
// @Summary Session status
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.SessionStatus}
// @Router /api/session [get]
func (h *FlowHandlers) Status(w http.ResponseWriter, r *http.Request) {
	status := models.SessionStatus{}
	if session, err := h.sessions.Current(r); err == nil {
		status.Connected = true
		status.Username = session.Username
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(&models.APIResponse{
		Status: "success",
		Data:   status,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	}); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode session status")
	}
}
