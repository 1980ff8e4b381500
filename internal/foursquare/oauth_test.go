// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package foursquare

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/tomtom215/swarmwrapped/internal/config"
)

func newTestOAuthClient(tokenURL string) *OAuthClient {
	return NewOAuthClient(config.FoursquareConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost:8000/callback",
		AuthURL:      "https://foursquare.com/oauth2/authenticate",
		TokenURL:     tokenURL,
		Timeout:      5 * time.Second,
	})
}

func TestAuthorizationURL(t *testing.T) {
	t.Parallel()

	o := newTestOAuthClient("https://foursquare.com/oauth2/access_token")
	raw := o.AuthorizationURL("signed-state")

	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if u.Scheme != "https" || u.Host != "foursquare.com" || u.Path != "/oauth2/authenticate" {
		t.Errorf("base = %s://%s%s", u.Scheme, u.Host, u.Path)
	}

	q := u.Query()
	checks := map[string]string{
		"client_id":     "client-id",
		"response_type": "code",
		"redirect_uri":  "http://localhost:8000/callback",
		"state":         "signed-state",
	}
	for k, want := range checks {
		if got := q.Get(k); got != want {
			t.Errorf("%s = %q, want %q", k, got, want)
		}
	}
}

func TestExchangeCode(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantToken string
		wantErr   bool
	}{
		{"success", http.StatusOK, `{"access_token":"tok-abc"}`, "tok-abc", false},
		{"missing token", http.StatusOK, `{}`, "", true},
		{"bad status", http.StatusBadRequest, `{"error":"invalid_grant"}`, "", true},
		{"bad json", http.StatusOK, `not json`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("method = %s, want GET", r.Method)
				}
				q := r.URL.Query()
				if q.Get("grant_type") != "authorization_code" {
					t.Errorf("grant_type = %q", q.Get("grant_type"))
				}
				if q.Get("code") != "the-code" {
					t.Errorf("code = %q", q.Get("code"))
				}
				if q.Get("client_secret") != "client-secret" {
					t.Errorf("client_secret = %q", q.Get("client_secret"))
				}
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			o := newTestOAuthClient(server.URL)
			token, err := o.ExchangeCode(context.Background(), "the-code")
			if tt.wantErr {
				if !errors.Is(err, ErrTokenExchange) {
					t.Errorf("err = %v, want ErrTokenExchange", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ExchangeCode: %v", err)
			}
			if token != tt.wantToken {
				t.Errorf("token = %q, want %q", token, tt.wantToken)
			}
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *APIError
		want string
	}{
		{&APIError{StatusCode: 500}, "foursquare: unexpected status 500"},
		{&APIError{StatusCode: 400, Type: "param_error"}, "foursquare: status 400: param_error"},
		{&APIError{StatusCode: 400, Type: "param_error", Detail: "bad"}, "foursquare: status 400: param_error: bad"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}
