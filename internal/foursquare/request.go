// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
request.go - Foursquare HTTP Request Helpers

This file provides the single code path every Foursquare v2 API call goes
through.

Request Pipeline:
  - Circuit breaker: execute() rejects calls while the breaker is open
  - Pacing: a token-bucket limiter spaces outbound requests
  - Authentication: oauth_token and v query parameters on all requests
  - Rate Limiting: bounded retry on HTTP 429, honoring Retry-After
  - Status Mapping: 401/403 -> ErrUnauthorized, other non-2xx -> *APIError

The access token is never logged. Log lines and metrics carry only the
endpoint label.
*/

//nolint:staticcheck // File documentation, not package doc
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

	"github.com/tomtom215/swarmwrapped/internal/logging"
	"github.com/tomtom215/swarmwrapped/internal/metrics"
)

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 32 << 20

// envelope is the outer shape of every v2 API response.
type envelope struct {
	Meta struct {
		Code        int    `json:"code"`
		ErrorType   string `json:"errorType,omitempty"`
		ErrorDetail string `json:"errorDetail,omitempty"`
	} `json:"meta"`
	Response json.RawMessage `json:"response"`
}

// get executes an authenticated GET against the v2 API and returns the raw
// "response" member of the envelope.
func (c *Client) get(ctx context.Context, endpoint, path, token string, query url.Values) (json.RawMessage, error) {
	if query == nil {
		query = url.Values{}
	}
	query.Set("oauth_token", token)
	query.Set("v", c.version)

	reqURL := c.baseURL + path + "?" + query.Encode()

	body, err := c.execute(func() ([]byte, error) {
		return c.doRequestWithRetry(ctx, endpoint, reqURL)
	})
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return env.Response, nil
}

// doRequestWithRetry executes the request with automatic retry on rate limiting (HTTP 429).
//
//   - At most maxRetries retries after the first attempt
//   - Exponential backoff from retryBaseDelay: 1s, 2s, 4s...
//   - Respects Retry-After header (RFC 6585) if present
//   - Only retries on HTTP 429 (Too Many Requests)
func (c *Client) doRequestWithRetry(ctx context.Context, endpoint, reqURL string) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for rate limiter: %w", err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		start := time.Now()
		resp, err := c.httpClient.Do(req)
		if err != nil {
			metrics.RecordFoursquareRequest(endpoint, "error", time.Since(start))
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("execute %s request: %w", endpoint, redactURLError(err))
		}

		body, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
		resp.Body.Close()
		metrics.RecordFoursquareRequest(endpoint, strconv.Itoa(resp.StatusCode), time.Since(start))
		if readErr != nil {
			return nil, fmt.Errorf("read %s response: %w", endpoint, readErr)
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return body, statusError(resp.StatusCode, body)
		}

		if attempt >= c.maxRetries {
			logging.Warn().Str("endpoint", endpoint).Int("retries", attempt).Msg("Foursquare API rate limit exceeded")
			return nil, fmt.Errorf("%w after %d retries", ErrRateLimited, attempt)
		}

		retryDelay := c.retryBaseDelay * (1 << attempt)
		if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
			if seconds, err := strconv.Atoi(retryAfter); err == nil && seconds >= 0 {
				retryDelay = time.Duration(seconds) * time.Second
			}
		}

		metrics.RecordFoursquareRetry(endpoint)
		logging.Warn().Str("endpoint", endpoint).Dur("retry_delay", retryDelay).Int("attempt", attempt+1).Int("max_retries", c.maxRetries).Msg("Foursquare API rate limited (HTTP 429), retrying")

		timer := time.NewTimer(retryDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

// statusError maps a non-2xx status to the package's error values.
func statusError(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return ErrUnauthorized
	}

	apiErr := &APIError{StatusCode: status}
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		apiErr.Type = env.Meta.ErrorType
		apiErr.Detail = env.Meta.ErrorDetail
	}
	return apiErr
}

// redactURLError strips the query string from *url.Error so the access
// token in oauth_token never reaches logs or error messages.
func redactURLError(err error) error {
	urlErr, ok := err.(*url.Error)
	if !ok {
		return err
	}
	if u, parseErr := url.Parse(urlErr.URL); parseErr == nil {
		u.RawQuery = ""
		return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
	}
	return &url.Error{Op: urlErr.Op, URL: "", Err: urlErr.Err}
}
