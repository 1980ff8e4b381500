// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/swarmwrapped/internal/audit"
	"github.com/tomtom215/swarmwrapped/internal/models"
)

type fakeOAuth struct {
	token       string
	err         error
	gotCode     string
	lastStateIn string
}

func (f *fakeOAuth) AuthorizationURL(state string) string {
	f.lastStateIn = state
	return "https://foursquare.test/oauth2/authenticate?state=" + url.QueryEscape(state)
}

func (f *fakeOAuth) ExchangeCode(_ context.Context, code string) (string, error) {
	f.gotCode = code
	return f.token, f.err
}

type fakeProfiles struct {
	profile *models.Profile
	err     error
	gotTok  string
}

func (f *fakeProfiles) Profile(_ context.Context, token string) (*models.Profile, error) {
	f.gotTok = token
	return f.profile, f.err
}

type fakePurger struct {
	forgotten []string
}

func (f *fakePurger) Forget(sessionID string) int {
	f.forgotten = append(f.forgotten, sessionID)
	return 3
}

type flowFixture struct {
	handlers *FlowHandlers
	manager  *SessionManager
	store    *MemorySessionStore
	oauth    *fakeOAuth
	profiles *fakeProfiles
	purger   *fakePurger
	states   *StateSigner
}

func newFlowFixture(t *testing.T) *flowFixture {
	t.Helper()
	store := NewMemorySessionStore()
	manager := NewSessionManager(store, newTestEncryptor(t), &SessionManagerConfig{
		CookieName:      "swarm_session",
		StateCookieName: "swarm_oauth_state",
		SessionTTL:      time.Hour,
		SlidingSession:  true,
		CookiePath:      "/",
	})
	f := &flowFixture{
		manager:  manager,
		store:    store,
		oauth:    &fakeOAuth{token: "access-token-123"},
		profiles: &fakeProfiles{profile: &models.Profile{ID: "u1", FirstName: "Ada"}},
		purger:   &fakePurger{},
		states:   newTestStateSigner(t),
	}
	f.handlers = NewFlowHandlers(f.oauth, f.profiles, manager, f.states, f.purger, nil, nil)
	return f
}

// findCookie returns the named cookie from a recorded response.
func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func TestFlowHandlers_Login(t *testing.T) {
	f := newFlowFixture(t)

	w := httptest.NewRecorder()
	f.handlers.Login(w, httptest.NewRequest(http.MethodGet, "/login", nil))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if !strings.HasPrefix(w.Header().Get("Location"), "https://foursquare.test/oauth2/authenticate") {
		t.Errorf("Location = %q", w.Header().Get("Location"))
	}

	cookie := findCookie(w, "swarm_oauth_state")
	if cookie == nil || cookie.Value == "" {
		t.Fatal("state nonce cookie not set")
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("state cookie attributes = %+v", cookie)
	}
	if err := f.states.Verify(f.oauth.lastStateIn, cookie.Value); err != nil {
		t.Errorf("issued state does not verify against its cookie: %v", err)
	}
}

// callbackRequest builds a callback request carrying a valid state and cookie.
func (f *flowFixture) callbackRequest(t *testing.T, query string) *http.Request {
	t.Helper()
	state, nonce, err := f.states.Issue()
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	q, _ := url.ParseQuery(query)
	if !q.Has("state") {
		q.Set("state", state)
	}
	r := httptest.NewRequest(http.MethodGet, "/callback?"+q.Encode(), nil)
	r.AddCookie(&http.Cookie{Name: "swarm_oauth_state", Value: nonce})
	return r
}

func TestFlowHandlers_CallbackSuccess(t *testing.T) {
	f := newFlowFixture(t)

	w := httptest.NewRecorder()
	f.handlers.Callback(w, f.callbackRequest(t, "code=good-code"))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302; body %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/wrapped" {
		t.Errorf("Location = %q, want /wrapped", loc)
	}
	if f.oauth.gotCode != "good-code" {
		t.Errorf("exchanged code = %q", f.oauth.gotCode)
	}
	if f.profiles.gotTok != "access-token-123" {
		t.Errorf("profile fetched with token %q", f.profiles.gotTok)
	}

	cookie := findCookie(w, "swarm_session")
	if cookie == nil || cookie.Value == "" {
		t.Fatal("session cookie not set")
	}
	if !cookie.HttpOnly || cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("session cookie attributes = %+v", cookie)
	}

	session, err := f.store.Get(context.Background(), cookie.Value)
	if err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if session.Username != "Ada" {
		t.Errorf("Username = %q", session.Username)
	}
	if session.Metadata[MetadataKeyAccessToken] == "access-token-123" {
		t.Error("access token stored unencrypted")
	}
	token, err := f.manager.AccessToken(session)
	if err != nil || token != "access-token-123" {
		t.Errorf("AccessToken() = %q, %v", token, err)
	}
}

func TestFlowHandlers_CallbackFailures(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		setup      func(f *flowFixture)
		noCookie   bool
		wantStatus int
	}{
		{name: "provider denied", query: "error=access_denied", wantStatus: http.StatusForbidden},
		{name: "missing code", query: "", wantStatus: http.StatusBadRequest},
		{name: "bad state", query: "code=c&state=forged", wantStatus: http.StatusBadRequest},
		{name: "missing state cookie", query: "code=c", noCookie: true, wantStatus: http.StatusBadRequest},
		{
			name: "exchange fails", query: "code=c",
			setup:      func(f *flowFixture) { f.oauth.err = errors.New("token exchange failed") },
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "profile fails", query: "code=c",
			setup:      func(f *flowFixture) { f.profiles.err = errors.New("unauthorized") },
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFlowFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			r := f.callbackRequest(t, tt.query)
			if tt.noCookie {
				r.Header.Del("Cookie")
			}
			w := httptest.NewRecorder()
			f.handlers.Callback(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if !strings.Contains(w.Body.String(), "/login") {
				t.Errorf("error page does not offer a reconnect link: %q", w.Body.String())
			}
			if findCookie(w, "swarm_session") != nil {
				t.Error("session cookie set on failed callback")
			}
			if n, _ := f.store.Count(context.Background()); n != 0 {
				t.Errorf("store has %d sessions after failed callback", n)
			}
		})
	}
}

func TestFlowHandlers_CallbackReplacesExistingSession(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	old := testSession("old-session", time.Hour)
	if err := f.store.Create(ctx, old); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	r := f.callbackRequest(t, "code=c")
	r.AddCookie(&http.Cookie{Name: "swarm_session", Value: old.ID})
	w := httptest.NewRecorder()
	f.handlers.Callback(w, r)

	cookie := findCookie(w, "swarm_session")
	if cookie == nil || cookie.Value == old.ID {
		t.Fatalf("login did not rotate the session ID: %+v", cookie)
	}
	if _, err := f.store.Get(ctx, old.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("old session still present: %v", err)
	}
	if len(f.purger.forgotten) != 1 || f.purger.forgotten[0] != old.ID {
		t.Errorf("purged = %v, want [%s]", f.purger.forgotten, old.ID)
	}
}

func TestFlowHandlers_CallbackFirstLoginPurgesNothing(t *testing.T) {
	f := newFlowFixture(t)

	w := httptest.NewRecorder()
	f.handlers.Callback(w, f.callbackRequest(t, "code=c"))

	if w.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", w.Code)
	}
	if len(f.purger.forgotten) != 0 {
		t.Errorf("purged = %v, want none", f.purger.forgotten)
	}
}

func TestFlowHandlers_Disconnect(t *testing.T) {
	f := newFlowFixture(t)
	ctx := context.Background()

	session := testSession("sess-1", time.Hour)
	if err := f.store.Create(ctx, session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.AddCookie(&http.Cookie{Name: "swarm_session", Value: session.ID})
	w := httptest.NewRecorder()
	f.handlers.Disconnect(w, r)

	if w.Code != http.StatusFound || w.Header().Get("Location") != "/" {
		t.Errorf("response = %d %q, want 302 /", w.Code, w.Header().Get("Location"))
	}
	if _, err := f.store.Get(ctx, session.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("session survived disconnect: %v", err)
	}
	if len(f.purger.forgotten) != 1 || f.purger.forgotten[0] != session.ID {
		t.Errorf("purged = %v, want [%s]", f.purger.forgotten, session.ID)
	}
	cookie := findCookie(w, "swarm_session")
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Errorf("session cookie not cleared: %+v", cookie)
	}

	// A disconnected cookie no longer authorizes anything.
	after := httptest.NewRequest(http.MethodGet, "/api/session", nil)
	after.AddCookie(&http.Cookie{Name: "swarm_session", Value: session.ID})
	if _, err := f.manager.Current(after); err == nil {
		t.Error("Current() succeeded after disconnect")
	}
}

func TestFlowHandlers_DisconnectWithoutSession(t *testing.T) {
	f := newFlowFixture(t)

	w := httptest.NewRecorder()
	f.handlers.Disconnect(w, httptest.NewRequest(http.MethodPost, "/logout", nil))

	if w.Code != http.StatusFound {
		t.Errorf("status = %d, want 302", w.Code)
	}
	if len(f.purger.forgotten) != 0 {
		t.Errorf("purger called without a session: %v", f.purger.forgotten)
	}
}

func TestFlowHandlers_Status(t *testing.T) {
	f := newFlowFixture(t)
	session := testSession("status", time.Hour)
	if err := f.store.Create(context.Background(), session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tests := []struct {
		name   string
		cookie string
		want   models.SessionStatus
	}{
		{"connected", session.ID, models.SessionStatus{Connected: true, Username: "Test User"}},
		{"unknown cookie", "nope", models.SessionStatus{}},
		{"no cookie", "", models.SessionStatus{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/session", nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: "swarm_session", Value: tt.cookie})
			}
			w := httptest.NewRecorder()
			f.handlers.Status(w, r)

			var resp struct {
				Status string               `json:"status"`
				Data   models.SessionStatus `json:"data"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if resp.Status != "success" || resp.Data != tt.want {
				t.Errorf("response = %+v, want %+v", resp, tt.want)
			}
		})
	}
}

func TestFlowHandlers_AuditTrail(t *testing.T) {
	f := newFlowFixture(t)
	store := audit.NewMemoryStore(10)
	logger := audit.NewLogger(store, audit.DefaultConfig())
	cfg := DefaultFlowHandlersConfig()
	cfg.Audit = logger
	f.handlers = NewFlowHandlers(f.oauth, f.profiles, f.manager, f.states, f.purger, nil, cfg)

	w := httptest.NewRecorder()
	f.handlers.Callback(w, f.callbackRequest(t, "error=access_denied"))

	w = httptest.NewRecorder()
	f.handlers.Callback(w, f.callbackRequest(t, "code=good-code"))
	cookie := findCookie(w, "swarm_session")
	if cookie == nil {
		t.Fatal("session cookie not set")
	}

	r := httptest.NewRequest(http.MethodPost, "/logout", nil)
	r.AddCookie(cookie)
	f.handlers.Disconnect(httptest.NewRecorder(), r)

	_ = logger.Close()

	events, err := store.Query(context.Background(), audit.QueryFilter{})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	want := []audit.EventType{audit.EventTypeDisconnected, audit.EventTypeConnected, audit.EventTypeConnectFailed}
	if len(events) != len(want) {
		t.Fatalf("got %d audit events, want %d", len(events), len(want))
	}
	for i, typ := range want {
		if events[i].Type != typ {
			t.Errorf("event[%d] = %s, want %s", i, events[i].Type, typ)
		}
	}
	if events[0].Actor.ID != "u1" {
		t.Errorf("disconnect actor = %+v", events[0].Actor)
	}
}

// failingCreateStore rejects every new session.
type failingCreateStore struct {
	*MemorySessionStore
}

func (failingCreateStore) Create(context.Context, *Session) error {
	return errors.New("store unavailable")
}

func TestFlowHandlers_CallbackFailureIsAudited(t *testing.T) {
	tests := []struct {
		name       string
		setup      func(f *flowFixture)
		wantReason string
	}{
		{
			name:       "exchange fails",
			setup:      func(f *flowFixture) { f.oauth.err = errors.New("token exchange failed") },
			wantReason: "code exchange failed",
		},
		{
			name:       "profile fails",
			setup:      func(f *flowFixture) { f.profiles.err = errors.New("unauthorized") },
			wantReason: "profile fetch failed",
		},
		{
			name: "session create fails",
			setup: func(f *flowFixture) {
				f.manager = NewSessionManager(failingCreateStore{f.store}, newTestEncryptor(t), f.manager.config)
			},
			wantReason: "session creation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFlowFixture(t)
			tt.setup(f)

			store := audit.NewMemoryStore(10)
			logger := audit.NewLogger(store, audit.DefaultConfig())
			cfg := DefaultFlowHandlersConfig()
			cfg.Audit = logger
			f.handlers = NewFlowHandlers(f.oauth, f.profiles, f.manager, f.states, f.purger, nil, cfg)

			w := httptest.NewRecorder()
			f.handlers.Callback(w, f.callbackRequest(t, "code=c"))
			if w.Code < http.StatusInternalServerError {
				t.Errorf("status = %d, want 5xx", w.Code)
			}
			_ = logger.Close()

			events, err := store.Query(context.Background(), audit.QueryFilter{})
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if len(events) != 1 {
				t.Fatalf("got %d audit events, want 1", len(events))
			}
			if events[0].Type != audit.EventTypeConnectFailed {
				t.Errorf("event type = %s, want %s", events[0].Type, audit.EventTypeConnectFailed)
			}
			if !strings.HasSuffix(events[0].Description, tt.wantReason) {
				t.Errorf("description = %q, want reason %q", events[0].Description, tt.wantReason)
			}
		})
	}
}
