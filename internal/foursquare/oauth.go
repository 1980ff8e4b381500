// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package foursquare

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/swarmwrapped/internal/config"
	"github.com/tomtom215/swarmwrapped/internal/metrics"
)

// OAuthClient implements the Foursquare OAuth 2.0 authorization-code flow.
type OAuthClient struct {
	clientID     string
	clientSecret string
	redirectURI  string
	authURL      string
	tokenURL     string
	httpClient   *http.Client
}

// NewOAuthClient creates an OAuth client from configuration.
func NewOAuthClient(cfg config.FoursquareConfig) *OAuthClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OAuthClient{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		redirectURI:  cfg.RedirectURI,
		authURL:      cfg.AuthURL,
		tokenURL:     cfg.TokenURL,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// AuthorizationURL returns the URL the user is redirected to for consent.
func (o *OAuthClient) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("client_id", o.clientID)
	params.Set("response_type", "code")
	params.Set("redirect_uri", o.redirectURI)
	if state != "" {
		params.Set("state", state)
	}
	return o.authURL + "?" + params.Encode()
}

// tokenResponse is the body returned by the access_token endpoint.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// ExchangeCode trades an authorization code for an access token.
// Foursquare performs the exchange with a GET request.
func (o *OAuthClient) ExchangeCode(ctx context.Context, code string) (string, error) {
	params := url.Values{}
	params.Set("client_id", o.clientID)
	params.Set("client_secret", o.clientSecret)
	params.Set("grant_type", "authorization_code")
	params.Set("redirect_uri", o.redirectURI)
	params.Set("code", code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.tokenURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return "", fmt.Errorf("%w: create request: %v", ErrTokenExchange, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := o.httpClient.Do(req)
	if err != nil {
		metrics.RecordFoursquareRequest(endpointToken, "error", time.Since(start))
		return "", fmt.Errorf("%w: %v", ErrTokenExchange, redactURLError(err))
	}
	defer resp.Body.Close()
	metrics.RecordFoursquareRequest(endpointToken, strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d", ErrTokenExchange, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrTokenExchange, err)
	}

	var tok tokenResponse
	if err := json.Unmarshal(body, &tok); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrTokenExchange, err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("%w: no access_token in response", ErrTokenExchange)
	}
	return tok.AccessToken, nil
}
