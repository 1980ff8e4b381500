// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package foursquare

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/swarmwrapped/internal/config"
	"github.com/tomtom215/swarmwrapped/internal/logging"
	"github.com/tomtom215/swarmwrapped/internal/models"
)

// Endpoint labels used for metrics and logs.
const (
	endpointProfile  = "users/self"
	endpointCheckins = "users/self/checkins"
	endpointToken    = "oauth2/access_token"
)

// MaxPageSize is the largest page the checkins endpoint accepts.
const MaxPageSize = 250

// Client calls the Foursquare v2 API on behalf of a user.
// It is safe for concurrent use.
type Client struct {
	baseURL        string
	version        string
	pageSize       int
	maxCheckins    int
	maxRetries     int
	retryBaseDelay time.Duration
	httpClient     *http.Client
	limiter        *rate.Limiter
	cb             *gobreaker.CircuitBreaker[[]byte]
}

// ProgressFunc receives the running total of fetched check-ins after each page.
type ProgressFunc func(fetched int)

// Window bounds a check-in fetch. Both ends are inclusive.
type Window struct {
	After  time.Time
	Before time.Time
}

// YearWindow returns January 1st 00:00:00 through December 31st 23:59:59 UTC.
func YearWindow(year int) Window {
	return Window{
		After:  time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		Before: time.Date(year, time.December, 31, 23, 59, 59, 0, time.UTC),
	}
}

// NewClient creates a Foursquare API client from configuration.
func NewClient(cfg config.FoursquareConfig) *Client {
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:        strings.TrimRight(cfg.APIBaseURL, "/"),
		version:        cfg.APIVersion,
		pageSize:       pageSize,
		maxCheckins:    cfg.MaxCheckins,
		maxRetries:     cfg.MaxRetries,
		retryBaseDelay: time.Second,
		httpClient:     &http.Client{Timeout: timeout},
		limiter:        rate.NewLimiter(limit, 1),
		cb:             newCircuitBreaker(breakerName),
	}
}

// profileResponse is the "response" member of /users/self.
type profileResponse struct {
	User struct {
		ID        string `json:"id"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Handle    string `json:"handle"`
		Checkins  struct {
			Count int `json:"count"`
		} `json:"checkins"`
	} `json:"user"`
}

// Profile returns the authenticated user's profile.
func (c *Client) Profile(ctx context.Context, token string) (*models.Profile, error) {
	raw, err := c.get(ctx, endpointProfile, "/users/self", token, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	var resp profileResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	return &models.Profile{
		ID:               resp.User.ID,
		FirstName:        resp.User.FirstName,
		LastName:         resp.User.LastName,
		Handle:           resp.User.Handle,
		LifetimeCheckins: resp.User.Checkins.Count,
	}, nil
}

// checkinsResponse is the "response" member of /users/self/checkins.
type checkinsResponse struct {
	Checkins struct {
		Count int              `json:"count"`
		Items []models.CheckIn `json:"items"`
	} `json:"checkins"`
}

// Checkins fetches every check-in inside the window, newest first, one page
// at a time. Paging stops on an empty page, a short page, or once the
// configured cap is reached. progress may be nil.
func (c *Client) Checkins(ctx context.Context, token string, window Window, progress ProgressFunc) ([]models.CheckIn, error) {
	all := make([]models.CheckIn, 0, c.pageSize)
	offset := 0

	for {
		limit := c.pageSize
		if c.maxCheckins > 0 && c.maxCheckins-len(all) < limit {
			limit = c.maxCheckins - len(all)
		}

		query := url.Values{}
		query.Set("limit", strconv.Itoa(limit))
		query.Set("offset", strconv.Itoa(offset))
		query.Set("sort", "newestfirst")
		if !window.After.IsZero() {
			query.Set("afterTimestamp", strconv.FormatInt(window.After.Unix(), 10))
		}
		if !window.Before.IsZero() {
			query.Set("beforeTimestamp", strconv.FormatInt(window.Before.Unix(), 10))
		}

		raw, err := c.get(ctx, endpointCheckins, "/users/self/checkins", token, query)
		if err != nil {
			return nil, fmt.Errorf("fetch checkins at offset %d: %w", offset, err)
		}

		var page checkinsResponse
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("decode checkins page: %w", err)
		}

		items := page.Checkins.Items
		all = append(all, items...)
		if progress != nil {
			progress(len(all))
		}

		logging.Debug().Int("offset", offset).Int("page", len(items)).Int("total", len(all)).Msg("Fetched Foursquare check-in page")

		if len(items) == 0 || len(items) < limit {
			break
		}
		if c.maxCheckins > 0 && len(all) >= c.maxCheckins {
			logging.Info().Int("max_checkins", c.maxCheckins).Msg("Check-in fetch cap reached")
			break
		}
		offset += len(items)
	}

	return all, nil
}
