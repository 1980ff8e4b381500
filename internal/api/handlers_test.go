// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	_ "github.com/tomtom215/swarmwrapped/docs"
	"github.com/tomtom215/swarmwrapped/internal/audit"
	"github.com/tomtom215/swarmwrapped/internal/auth"
	"github.com/tomtom215/swarmwrapped/internal/config"
	"github.com/tomtom215/swarmwrapped/internal/foursquare"
	"github.com/tomtom215/swarmwrapped/internal/models"
	"github.com/tomtom215/swarmwrapped/internal/report"
	"github.com/tomtom215/swarmwrapped/internal/web"
)

const (
	testSecret     = "test-session-secret-that-is-long-enough"
	testCookieName = "swarm_session"
	testYear       = 2025
)

// fakeFetcher serves a fixed history for every token.
type fakeFetcher struct {
	mu          sync.Mutex
	checkins    []models.CheckIn
	checkinsErr error
	calls       int
}

func (f *fakeFetcher) Profile(ctx context.Context, token string) (*models.Profile, error) {
	return &models.Profile{ID: "u1", FirstName: "Ada", LastName: "L.", LifetimeCheckins: 5000}, nil
}

func (f *fakeFetcher) Checkins(ctx context.Context, token string, window foursquare.Window, progress foursquare.ProgressFunc) ([]models.CheckIn, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.checkinsErr != nil {
		return nil, f.checkinsErr
	}
	if progress != nil {
		progress(len(f.checkins))
	}
	return f.checkins, nil
}

func (f *fakeFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeFetcher) fail(err error) {
	f.mu.Lock()
	f.checkinsErr = err
	f.mu.Unlock()
}

func sampleCheckins(n int) []models.CheckIn {
	out := make([]models.CheckIn, n)
	base := time.Date(testYear, 4, 1, 18, 0, 0, 0, time.UTC)
	for i := range out {
		out[i] = models.CheckIn{
			ID:        fmt.Sprintf("c%d", i),
			CreatedAt: base.AddDate(0, 0, i).Unix(),
			Venue: models.Venue{
				ID:         fmt.Sprintf("v%d", i%4),
				Name:       fmt.Sprintf("Venue %d", i%4),
				Categories: []models.Category{{Name: "Coffee Shop"}},
				Location:   models.Location{Lat: 30.2672 + float64(i%4)/100, Lng: -97.7431, City: "Austin", State: "TX", Country: models.UnitedStates},
			},
		}
	}
	return out
}

type fakeOAuth struct{}

func (fakeOAuth) AuthorizationURL(state string) string {
	return "https://foursquare.test/oauth2/authenticate?state=" + url.QueryEscape(state)
}

func (fakeOAuth) ExchangeCode(context.Context, string) (string, error) {
	return "exchanged-token", nil
}

type fakeBreaker string

func (b fakeBreaker) BreakerState() string { return string(b) }

// testEnv is a fully wired router over fakes.
type testEnv struct {
	fetcher   *fakeFetcher
	store     *auth.MemorySessionStore
	encryptor *auth.TokenEncryptor
	reports   *report.Service
	audit     *audit.Logger
	auditLog  *audit.MemoryStore
	router    http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Report:   config.ReportConfig{DefaultYear: testYear, CacheTTL: time.Minute, ShareTTL: time.Hour},
		Security: config.SecurityConfig{RateLimitDisabled: true},
	}

	encryptor, err := auth.NewTokenEncryptor(testSecret)
	if err != nil {
		t.Fatalf("NewTokenEncryptor() error = %v", err)
	}
	states, err := auth.NewStateSigner(testSecret, 10*time.Minute)
	if err != nil {
		t.Fatalf("NewStateSigner() error = %v", err)
	}

	store := auth.NewMemorySessionStore()
	sessions := auth.NewSessionManager(store, encryptor, &auth.SessionManagerConfig{
		CookieName:      testCookieName,
		StateCookieName: testCookieName + "_state",
		SessionTTL:      time.Hour,
		SlidingSession:  true,
		CookiePath:      "/",
	})

	fetcher := &fakeFetcher{checkins: sampleCheckins(40)}
	reports := report.NewService(fetcher, cfg.Report, "https://wrapped.test")
	renderer := web.MustNewRenderer()
	auditLog := audit.NewMemoryStore(100)
	auditLogger := audit.NewLogger(auditLog, audit.DefaultConfig())
	t.Cleanup(func() { _ = auditLogger.Close() })

	flowCfg := auth.DefaultFlowHandlersConfig()
	flowCfg.Audit = auditLogger
	flows := auth.NewFlowHandlers(fakeOAuth{}, fetcher, sessions, states, reports, renderer.RenderError, flowCfg)

	handler := NewHandler(sessions, reports, renderer, fakeBreaker("closed"), cfg, "test")
	handler.SetAuditLogger(auditLogger)
	router := NewRouter(handler, flows, sessions, NewChiMiddlewareFromConfig(cfg.Security))

	return &testEnv{
		fetcher:   fetcher,
		store:     store,
		encryptor: encryptor,
		reports:   reports,
		audit:     auditLogger,
		auditLog:  auditLog,
		router:    router.SetupChi(),
	}
}

// login stores a session holding token and returns its cookie.
func (e *testEnv) login(t *testing.T, token string) *http.Cookie {
	t.Helper()
	session := auth.NewSession(&models.Profile{ID: "u1", FirstName: "Ada"}, time.Hour)
	if err := e.encryptor.SealAccessToken(session, token); err != nil {
		t.Fatalf("SealAccessToken() error = %v", err)
	}
	if err := e.store.Create(context.Background(), session); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	return &http.Cookie{Name: testCookieName, Value: session.ID}
}

func (e *testEnv) do(method, target string, cookie *http.Cookie, body string) *httptest.ResponseRecorder {
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, r)
	return w
}

// decodeResponse decodes an APIResponse with data into out.
func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, out interface{}) models.APIResponse {
	t.Helper()
	var resp struct {
		models.APIResponse
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, w.Body.String())
	}
	if out != nil && len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, out); err != nil {
			t.Fatalf("decode data: %v", err)
		}
	}
	return resp.APIResponse
}

func TestReport_RequiresSession(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/report", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	resp := decodeResponse(t, w, nil)
	if resp.Error == nil || resp.Error.Code != models.ErrCodeUnauthorized {
		t.Errorf("error = %+v, want UNAUTHORIZED", resp.Error)
	}
}

func TestReport_Success(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "token-1")

	w := env.do(http.MethodGet, "/api/report", cookie, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var rep models.Report
	resp := decodeResponse(t, w, &rep)
	if resp.Status != "success" {
		t.Errorf("status = %q", resp.Status)
	}
	if rep.Year != testYear || rep.TotalCheckins != 40 {
		t.Errorf("report year = %d, total = %d", rep.Year, rep.TotalCheckins)
	}
	if rep.Username != "Ada L." {
		t.Errorf("username = %q", rep.Username)
	}

	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}
	if cc := w.Header().Get("Cache-Control"); cc != "private, no-cache" {
		t.Errorf("Cache-Control = %q", cc)
	}

	r := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	r.AddCookie(cookie)
	r.Header.Set("If-None-Match", etag)
	w2 := httptest.NewRecorder()
	env.router.ServeHTTP(w2, r)
	if w2.Code != http.StatusNotModified {
		t.Errorf("conditional status = %d, want 304", w2.Code)
	}
	if env.fetcher.callCount() != 1 {
		t.Errorf("fetch calls = %d, want 1 (second request cached)", env.fetcher.callCount())
	}
}

func TestReport_Validation(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "token-1")

	for _, query := range []string{"year=1999", "year=abc", "exclude_sensitive=maybe", fmt.Sprintf("year=%d", time.Now().Year()+2)} {
		t.Run(query, func(t *testing.T) {
			w := env.do(http.MethodGet, "/api/report?"+query, cookie, "")
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			resp := decodeResponse(t, w, nil)
			if resp.Error == nil || resp.Error.Code != models.ErrCodeValidation {
				t.Errorf("error = %+v", resp.Error)
			}
		})
	}
}

func TestReport_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		empty      bool
		wantStatus int
		wantCode   string
		revoked    bool
	}{
		{"no checkins", nil, true, http.StatusNotFound, models.ErrCodeNoCheckins, false},
		{"token rejected", foursquare.ErrUnauthorized, false, http.StatusUnauthorized, models.ErrCodeReconnectRequired, true},
		{"rate limited", foursquare.ErrRateLimited, false, http.StatusTooManyRequests, models.ErrCodeRateLimited, false},
		{"circuit open", foursquare.ErrCircuitOpen, false, http.StatusServiceUnavailable, models.ErrCodeServiceUnavailable, false},
		{"upstream", &foursquare.APIError{StatusCode: 500, Type: "server_error"}, false, http.StatusBadGateway, models.ErrCodeUpstream, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			cookie := env.login(t, "token-1")
			if tt.empty {
				env.fetcher.checkins = nil
			}
			env.fetcher.fail(tt.err)

			w := env.do(http.MethodGet, "/api/report", cookie, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			resp := decodeResponse(t, w, nil)
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want %s", resp.Error, tt.wantCode)
			}
			if strings.Contains(w.Body.String(), "foursquare:") {
				t.Errorf("internal error text leaked: %s", w.Body.String())
			}

			_, err := env.store.Get(context.Background(), cookie.Value)
			if revoked := err != nil; revoked != tt.revoked {
				t.Errorf("session revoked = %v, want %v", revoked, tt.revoked)
			}
		})
	}
}

func TestReportMap_GeoJSON(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "token-1")

	w := env.do(http.MethodGet, "/api/report/map", cookie, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/geo+json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var fc GeoJSONFeatureCollection
	if err := json.Unmarshal(w.Body.Bytes(), &fc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fc.Type != "FeatureCollection" || len(fc.Features) != 4 {
		t.Fatalf("collection = %s with %d features, want 4", fc.Type, len(fc.Features))
	}
	total := 0
	for _, f := range fc.Features {
		if f.Geometry.Type != "Point" || len(f.Geometry.Coordinates) != 2 {
			t.Errorf("geometry = %+v", f.Geometry)
		}
		if lng := f.Geometry.Coordinates[0]; lng != -97.7431 {
			t.Errorf("longitude first: got %v", lng)
		}
		total += f.Properties.Checkins
	}
	if total != 40 {
		t.Errorf("feature check-ins = %d, want 40", total)
	}
}

func TestMapFeatureCollection_Empty(t *testing.T) {
	fc := mapFeatureCollection(nil)
	data, err := json.Marshal(fc)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"features":[]`) {
		t.Errorf("empty collection = %s, want an empty features array", data)
	}
}

func TestPages(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "token-1")

	tests := []struct {
		name       string
		target     string
		cookie     *http.Cookie
		wantStatus int
		wantBody   string
		wantLoc    string
	}{
		{"index anonymous", "/", nil, http.StatusOK, `href="/login"`, ""},
		{"index connected", "/", cookie, http.StatusOK, `href="/generate"`, ""},
		{"generate requires session", "/generate", nil, http.StatusFound, "", "/login"},
		{"generate", "/generate?year=2024", cookie, http.StatusOK, `data-year="2024"`, ""},
		{"wrapped requires session", "/wrapped", nil, http.StatusFound, "", "/login"},
		{"wrapped", "/wrapped", cookie, http.StatusOK, "40 check-ins", ""},
		{"wrapped bad year", "/wrapped?year=1900", cookie, http.StatusBadRequest, "year must be between", ""},
		{"unknown page", "/nope", nil, http.StatusNotFound, "Page not found", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodGet, tt.target, tt.cookie, "")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && !strings.Contains(w.Body.String(), tt.wantBody) {
				t.Errorf("body missing %q", tt.wantBody)
			}
			if tt.wantLoc != "" && w.Header().Get("Location") != tt.wantLoc {
				t.Errorf("Location = %q, want %q", w.Header().Get("Location"), tt.wantLoc)
			}
			if w.Header().Get("Content-Security-Policy") == "" {
				t.Error("missing Content-Security-Policy")
			}
		})
	}
}

func TestWrappedPage_NoCheckinsOffersRetry(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "token-1")
	env.fetcher.checkins = nil

	w := env.do(http.MethodGet, "/wrapped?year=2024", cookie, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	body := w.Body.String()
	for _, s := range []string{"No check-ins found", `href="/wrapped?year=2024"`, `href="/login"`} {
		if !strings.Contains(body, s) {
			t.Errorf("body missing %q", s)
		}
	}
}

var shareURLPattern = regexp.MustCompile(`^https://wrapped\.test/shared/[0-9a-f]{24}$`)

func TestShareFlow(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "token-1")

	w := env.do(http.MethodPost, "/api/report/share", cookie, `{"year":2025,"exclude_sensitive":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("share status = %d, body = %s", w.Code, w.Body.String())
	}
	var link models.ShareLink
	decodeResponse(t, w, &link)
	if !shareURLPattern.MatchString(link.URL) {
		t.Fatalf("share url = %q", link.URL)
	}

	again := env.do(http.MethodPost, "/api/report/share", cookie, `{"year":2025,"exclude_sensitive":true}`)
	var second models.ShareLink
	decodeResponse(t, again, &second)
	if second.Token != link.Token {
		t.Errorf("re-share token = %q, want %q", second.Token, link.Token)
	}

	// Anonymous viewers
	jsonResp := env.do(http.MethodGet, "/api/shared/"+link.Token, nil, "")
	if jsonResp.Code != http.StatusOK {
		t.Fatalf("shared json status = %d", jsonResp.Code)
	}
	var shared models.Report
	decodeResponse(t, jsonResp, &shared)
	if shared.ShareToken != link.Token || !shared.ExcludeSensitive {
		t.Errorf("shared report = token %q, exclude %v", shared.ShareToken, shared.ExcludeSensitive)
	}

	page := env.do(http.MethodGet, "/shared/"+link.Token, nil, "")
	if page.Code != http.StatusOK {
		t.Fatalf("shared page status = %d", page.Code)
	}
	if strings.Contains(page.Body.String(), `id="share-button"`) {
		t.Error("shared page shows the owner share button")
	}

	// Disconnect purges the share
	logout := env.do(http.MethodPost, "/logout", cookie, "")
	if logout.Code != http.StatusFound {
		t.Fatalf("logout status = %d", logout.Code)
	}
	if gone := env.do(http.MethodGet, "/api/shared/"+link.Token, nil, ""); gone.Code != http.StatusNotFound {
		t.Errorf("share after disconnect status = %d, want 404", gone.Code)
	}
	if after := env.do(http.MethodGet, "/api/report", cookie, ""); after.Code != http.StatusUnauthorized {
		t.Errorf("report after disconnect status = %d, want 401", after.Code)
	}
}

func TestShare_Validation(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "token-1")

	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{"year":`},
		{"bad year", `{"year":1990}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(http.MethodPost, "/api/report/share", cookie, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
		})
	}

	if w := env.do(http.MethodPost, "/api/report/share", nil, `{}`); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous share status = %d, want 401", w.Code)
	}
}

func TestShared_Tokens(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"json malformed", "/api/shared/not-a-token", http.StatusBadRequest},
		{"json unknown", "/api/shared/" + strings.Repeat("ab", 12), http.StatusNotFound},
		{"page malformed", "/shared/not-a-token", http.StatusNotFound},
		{"page unknown", "/shared/" + strings.Repeat("ab", 12), http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := env.do(http.MethodGet, tt.target, nil, ""); w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestSessionStatus(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "token-1")

	var status models.SessionStatus
	decodeResponse(t, env.do(http.MethodGet, "/api/session", cookie, ""), &status)
	if !status.Connected || status.Username != "Ada" {
		t.Errorf("status = %+v", status)
	}

	status = models.SessionStatus{}
	decodeResponse(t, env.do(http.MethodGet, "/api/session", nil, ""), &status)
	if status.Connected {
		t.Error("anonymous visitor reported as connected")
	}
}

func TestLoginRedirectsToProvider(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/login", nil, "")
	if w.Code != http.StatusFound {
		t.Fatalf("status = %d", w.Code)
	}
	if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "https://foursquare.test/oauth2/authenticate?state=") {
		t.Errorf("Location = %q", loc)
	}
}

func TestHealth(t *testing.T) {
	tests := []struct {
		breaker BreakerReporter
		want    string
		state   string
	}{
		{fakeBreaker("closed"), "healthy", "closed"},
		{fakeBreaker("open"), "degraded", "open"},
		{nil, "healthy", "unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.state, func(t *testing.T) {
			h := &Handler{breaker: tt.breaker, version: "1.2.3", startTime: time.Now()}
			w := httptest.NewRecorder()
			h.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			var health models.HealthStatus
			decodeResponse(t, w, &health)
			if health.Status != tt.want || health.CircuitBreaker != tt.state || health.Version != "1.2.3" {
				t.Errorf("health = %+v", health)
			}
		})
	}
}

func TestNotFound_API(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(http.MethodGet, "/api/nope", nil, "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
	resp := decodeResponse(t, w, nil)
	if resp.Error == nil || resp.Error.Code != models.ErrCodeNotFound {
		t.Errorf("error = %+v", resp.Error)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.do(http.MethodGet, "/", nil, "")

	w := env.do(http.MethodGet, "/metrics", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "api_requests_total") {
		t.Error("metrics output missing api_requests_total")
	}
}

func TestAuditTrail_ShareAndDisconnect(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "token-1")

	if w := env.do(http.MethodPost, "/api/report/share", cookie, `{"year":2025}`); w.Code != http.StatusOK {
		t.Fatalf("share status = %d", w.Code)
	}
	env.do(http.MethodPost, "/logout", cookie, "")

	_ = env.audit.Close()

	events, err := env.auditLog.Query(context.Background(), audit.QueryFilter{ActorID: "u1"})
	if err != nil {
		t.Fatalf("Query() error = %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d audit events, want 2", len(events))
	}
	if events[0].Type != audit.EventTypeDisconnected || events[1].Type != audit.EventTypeReportShared {
		t.Errorf("audit events = %s, %s", events[0].Type, events[1].Type)
	}
	if events[0].RequestID == "" {
		t.Error("audit event missing request ID")
	}
}

// reconnect runs /login and /callback while presenting cookie, and returns
// the new session cookie.
func (e *testEnv) reconnect(t *testing.T, cookie *http.Cookie) *http.Cookie {
	t.Helper()

	login := e.do(http.MethodGet, "/login", cookie, "")
	if login.Code != http.StatusFound {
		t.Fatalf("login status = %d", login.Code)
	}
	loc, err := url.Parse(login.Header().Get("Location"))
	if err != nil {
		t.Fatalf("parse Location: %v", err)
	}

	r := httptest.NewRequest(http.MethodGet, "/callback?code=abc&state="+url.QueryEscape(loc.Query().Get("state")), nil)
	r.AddCookie(cookie)
	for _, c := range login.Result().Cookies() {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, r)
	if w.Code != http.StatusFound {
		t.Fatalf("callback status = %d, body = %s", w.Code, w.Body.String())
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == testCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatal("callback set no session cookie")
	return nil
}

func TestReconnect_PurgesReplacedSessionShares(t *testing.T) {
	env := newTestEnv(t)
	first := env.login(t, "token-1")

	w := env.do(http.MethodPost, "/api/report/share", first, `{"year":2025}`)
	if w.Code != http.StatusOK {
		t.Fatalf("share status = %d", w.Code)
	}
	var link models.ShareLink
	decodeResponse(t, w, &link)

	second := env.reconnect(t, first)
	if second.Value == first.Value {
		t.Fatal("reconnect kept the old session ID")
	}
	if w := env.do(http.MethodGet, "/api/shared/"+link.Token, nil, ""); w.Code != http.StatusNotFound {
		t.Errorf("shared status after reconnect = %d, want 404", w.Code)
	}

	env.do(http.MethodPost, "/logout", second, "")
	if keys := env.reports.Cache().Keys(""); len(keys) != 0 {
		t.Errorf("cache entries survived reconnect and logout: %v", keys)
	}
}

func TestLogout_GetOnlyConfirms(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "token-1")

	w := env.do(http.MethodGet, "/logout", cookie, "")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /logout status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `<form method="post" action="/logout"`) {
		t.Error("confirmation page has no POST form")
	}
	var status models.SessionStatus
	decodeResponse(t, env.do(http.MethodGet, "/api/session", cookie, ""), &status)
	if !status.Connected {
		t.Error("GET /logout ended the session")
	}

	post := env.do(http.MethodPost, "/logout", cookie, "")
	if post.Code != http.StatusFound {
		t.Fatalf("POST /logout status = %d, want 302", post.Code)
	}
	if n, _ := env.store.Count(context.Background()); n != 0 {
		t.Errorf("store has %d sessions after POST /logout", n)
	}

	anon := env.do(http.MethodGet, "/logout", nil, "")
	if anon.Code != http.StatusFound || anon.Header().Get("Location") != "/" {
		t.Errorf("anonymous GET /logout = %d %q, want 302 /", anon.Code, anon.Header().Get("Location"))
	}
}

func TestSwaggerDocs(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/swagger/doc.json", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("doc.json status = %d", w.Code)
	}
	var doc struct {
		Swagger string                     `json:"swagger"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode doc.json: %v", err)
	}
	if doc.Swagger != "2.0" {
		t.Errorf("swagger = %q, want 2.0", doc.Swagger)
	}
	for _, path := range []string{"/api/report", "/api/report/map", "/api/report/share", "/api/shared/{token}", "/api/session", "/health"} {
		if _, ok := doc.Paths[path]; !ok {
			t.Errorf("doc.json missing path %s", path)
		}
	}

	ui := env.do(http.MethodGet, "/swagger/index.html", nil, "")
	if ui.Code != http.StatusOK {
		t.Fatalf("index.html status = %d", ui.Code)
	}
	if csp := ui.Header().Get("Content-Security-Policy"); !strings.Contains(csp, "'unsafe-inline'") {
		t.Errorf("swagger UI CSP = %q, want inline script allowed", csp)
	}
}
