// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/swarmwrapped/internal/config"
	"github.com/tomtom215/swarmwrapped/internal/logging"
	"github.com/tomtom215/swarmwrapped/internal/metrics"
	"github.com/tomtom215/swarmwrapped/internal/models"
)

type contextKey string

// SessionContextKey is the context key for the current *Session.
const SessionContextKey contextKey = "session"

// SessionManagerConfig holds configuration for the session manager.
type SessionManagerConfig struct {
	// CookieName is the name of the session cookie.
	CookieName string

	// StateCookieName is the name of the cookie mirroring the OAuth state nonce.
	StateCookieName string

	// SessionTTL is the session time-to-live.
	SessionTTL time.Duration

	// SlidingSession enables session expiry extension on each request.
	SlidingSession bool

	// CookiePath is the path for the session cookie.
	CookiePath string

	// CookieSecure sets the Secure flag on the cookie.
	CookieSecure bool
}

// DefaultSessionManagerConfig returns sensible defaults.
func DefaultSessionManagerConfig() *SessionManagerConfig {
	return &SessionManagerConfig{
		CookieName:      "swarm_session",
		StateCookieName: "swarm_oauth_state",
		SessionTTL:      24 * time.Hour,
		SlidingSession:  true,
		CookiePath:      "/",
		CookieSecure:    true,
	}
}

// SessionManagerConfigFrom builds the manager config from application config.
func SessionManagerConfigFrom(cfg config.SessionConfig) *SessionManagerConfig {
	c := DefaultSessionManagerConfig()
	if cfg.CookieName != "" {
		c.CookieName = cfg.CookieName
		c.StateCookieName = cfg.CookieName + "_state"
	}
	if cfg.TTL > 0 {
		c.SessionTTL = cfg.TTL
	}
	c.CookieSecure = cfg.CookieSecure
	return c
}

// SessionManager owns the session cookie and the lifecycle of sessions.
type SessionManager struct {
	store     SessionStore
	encryptor *TokenEncryptor
	config    *SessionManagerConfig
}

// NewSessionManager creates a new session manager.
func NewSessionManager(store SessionStore, encryptor *TokenEncryptor, config *SessionManagerConfig) *SessionManager {
	if config == nil {
		config = DefaultSessionManagerConfig()
	}
	return &SessionManager{
		store:     store,
		encryptor: encryptor,
		config:    config,
	}
}

// Load is a middleware that looks up the session from the request cookie.
// If valid, the session is placed in the request context. If no session is
// found the request continues without one (use RequireSession for
// protected routes).
func (m *SessionManager) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.Current(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		if m.config.SlidingSession {
			newExpiry := time.Now().Add(m.config.SessionTTL)
			if touchErr := m.store.Touch(r.Context(), session.ID, newExpiry); touchErr != nil {
				logging.Ctx(r.Context()).Error().Err(touchErr).Msg("Failed to touch session")
			} else {
				session.ExpiresAt = newExpiry
			}
		}

		ctx := context.WithValue(r.Context(), SessionContextKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSession returns a middleware that runs unauthorized instead of the
// wrapped handler when the request carries no valid session.
func (m *SessionManager) RequireSession(unauthorized http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return m.Load(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SessionFromContext(r.Context()) == nil {
				unauthorized.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

// SessionFromContext returns the session placed by Load, or nil.
func SessionFromContext(ctx context.Context) *Session {
	session, _ := ctx.Value(SessionContextKey).(*Session)
	return session
}

// Current returns the session referenced by the request cookie.
func (m *SessionManager) Current(r *http.Request) (*Session, error) {
	sessionID := m.sessionIDFromCookie(r)
	if sessionID == "" {
		return nil, ErrSessionNotFound
	}

	session, err := m.store.Get(r.Context(), sessionID)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired) {
			logging.Ctx(r.Context()).Error().Err(err).Msg("Session lookup error")
		}
		return nil, err
	}
	return session, nil
}

// Create stores a fresh session for the profile holding the encrypted access
// token and sets the cookie. Any session named by the request cookie is
// deleted first so a login always yields a new ID.
func (m *SessionManager) Create(ctx context.Context, w http.ResponseWriter, r *http.Request, profile *models.Profile, accessToken string) (*Session, error) {
	if oldID := m.sessionIDFromCookie(r); oldID != "" {
		if err := m.store.Delete(ctx, oldID); err != nil {
			logging.Ctx(ctx).Warn().Err(err).Msg("Failed to delete previous session")
		}
	}

	session := NewSession(profile, m.config.SessionTTL)
	if err := m.encryptor.SealAccessToken(session, accessToken); err != nil {
		return nil, err
	}

	if err := m.store.Create(ctx, session); err != nil {
		return nil, err
	}
	metrics.RecordSessionCreated()

	m.SetSessionCookie(w, session.ID)
	return session, nil
}

// Destroy deletes the session and clears the cookie.
func (m *SessionManager) Destroy(ctx context.Context, w http.ResponseWriter, sessionID string) error {
	m.ClearSessionCookie(w)
	if sessionID == "" {
		return nil
	}
	if err := m.store.Delete(ctx, sessionID); err != nil {
		return err
	}
	metrics.RecordSessionDestroyed("disconnect", 1)
	return nil
}

// Revoke deletes a session whose provider token is no longer accepted.
func (m *SessionManager) Revoke(ctx context.Context, w http.ResponseWriter, sessionID string) {
	m.ClearSessionCookie(w)
	if err := m.store.Delete(ctx, sessionID); err != nil {
		logging.Ctx(ctx).Error().Err(err).Msg("Failed to revoke session")
		return
	}
	metrics.RecordSessionDestroyed("revoked", 1)
}

// AccessToken returns the decrypted provider token of the session.
func (m *SessionManager) AccessToken(session *Session) (string, error) {
	return m.encryptor.OpenAccessToken(session)
}

// Exists reports whether sessionID names a live session. Store errors
// other than not-found or expired count as live.
func (m *SessionManager) Exists(ctx context.Context, sessionID string) bool {
	_, err := m.store.Get(ctx, sessionID)
	return err == nil || (!errors.Is(err, ErrSessionNotFound) && !errors.Is(err, ErrSessionExpired))
}

// CleanupExpired removes expired sessions from the store.
func (m *SessionManager) CleanupExpired(ctx context.Context) (int, error) {
	n, err := m.store.CleanupExpired(ctx)
	metrics.RecordSessionDestroyed("expired", n)
	return n, err
}

// sessionIDFromCookie extracts the session ID from the request cookie.
func (m *SessionManager) sessionIDFromCookie(r *http.Request) string {
	cookie, err := r.Cookie(m.config.CookieName)
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return ""
}

// SetSessionCookie sets the session cookie on the response.
func (m *SessionManager) SetSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    sessionID,
		Path:     m.config.CookiePath,
		MaxAge:   int(m.config.SessionTTL.Seconds()),
		Secure:   m.config.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie clears the session cookie.
func (m *SessionManager) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.CookieName,
		Value:    "",
		Path:     m.config.CookiePath,
		MaxAge:   -1,
		Secure:   m.config.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetStateCookie mirrors the OAuth state nonce into a short-lived cookie.
// SameSite=Lax lets the cookie ride along on the provider's top-level
// redirect back to the callback.
func (m *SessionManager) SetStateCookie(w http.ResponseWriter, nonce string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.StateCookieName,
		Value:    nonce,
		Path:     m.config.CookiePath,
		MaxAge:   int(ttl.Seconds()),
		Secure:   m.config.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// StateNonce returns the nonce from the state cookie.
func (m *SessionManager) StateNonce(r *http.Request) string {
	cookie, err := r.Cookie(m.config.StateCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// ClearStateCookie removes the state cookie once the callback has run.
func (m *SessionManager) ClearStateCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.config.StateCookieName,
		Value:    "",
		Path:     m.config.CookiePath,
		MaxAge:   -1,
		Secure:   m.config.CookieSecure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
