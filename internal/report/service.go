// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package report

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/swarmwrapped/internal/analytics"
	"github.com/tomtom215/swarmwrapped/internal/cache"
	"github.com/tomtom215/swarmwrapped/internal/config"
	"github.com/tomtom215/swarmwrapped/internal/foursquare"
	"github.com/tomtom215/swarmwrapped/internal/logging"
	"github.com/tomtom215/swarmwrapped/internal/metrics"
	"github.com/tomtom215/swarmwrapped/internal/models"
)

var (
	// ErrNoCheckins is returned when the requested year has no check-ins,
	// or none survive the privacy filter.
	ErrNoCheckins = errors.New("no check-ins found for this year")

	// ErrShareNotFound is returned for unknown or expired share tokens.
	ErrShareNotFound = errors.New("shared report not found or expired")
)

// Fetcher is the part of the Foursquare client the service needs.
type Fetcher interface {
	Profile(ctx context.Context, token string) (*models.Profile, error)
	Checkins(ctx context.Context, token string, window foursquare.Window, progress foursquare.ProgressFunc) ([]models.CheckIn, error)
}

// Request selects which report to build.
type Request struct {
	Year             int  `json:"year"`
	ExcludeSensitive bool `json:"exclude_sensitive"`
}

// ProgressFunc receives generation progress. It may be nil.
type ProgressFunc func(models.ReportProgress)

// Result is a generated or cached report.
type Result struct {
	Report   *models.Report
	Cached   bool
	Duration time.Duration
}

// Service orchestrates fetch, analyze and cache for a session. It is the
// only holder of check-in derived data, and it keeps all of it in memory.
type Service struct {
	fetcher           Fetcher
	cache             *cache.Cache
	group             singleflight.Group
	shareTTL          time.Duration
	generationTimeout time.Duration
	publicURL         string
	cfg               config.ReportConfig
	now               func() time.Time
}

// NewService creates a report service. publicURL prefixes share links and
// may be empty, in which case links are relative.
func NewService(fetcher Fetcher, cfg config.ReportConfig, publicURL string) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	shareTTL := cfg.ShareTTL
	if shareTTL <= 0 {
		shareTTL = 7 * 24 * time.Hour
	}
	generationTimeout := cfg.GenerationTimeout
	if generationTimeout <= 0 {
		generationTimeout = 2 * time.Minute
	}
	return &Service{
		fetcher:           fetcher,
		cache:             cache.New(cacheTTL),
		shareTTL:          shareTTL,
		generationTimeout: generationTimeout,
		publicURL:         publicURL,
		cfg:               cfg,
		now:               time.Now,
	}
}

// Cache exposes the backing cache for the maintenance janitor.
func (s *Service) Cache() *cache.Cache {
	return s.cache
}

// DefaultRequest returns the request used when the visitor passes no
// parameters.
func (s *Service) DefaultRequest() Request {
	return Request{
		Year:             s.cfg.ReportYear(s.now()),
		ExcludeSensitive: s.cfg.ExcludeSensitive,
	}
}

// normalize fills in the configured default year.
func (s *Service) normalize(req Request) Request {
	if req.Year == 0 {
		req.Year = s.cfg.ReportYear(s.now())
	}
	return req
}

func reportPrefix(sessionID string) string {
	return "report:" + sessionID
}

func (s *Service) reportKey(sessionID string, req Request) string {
	return cache.GenerateKey(reportPrefix(sessionID), req)
}

// Generate returns the session's report for req, serving it from the cache
// when possible. token is the session's decrypted Foursquare access token.
func (s *Service) Generate(ctx context.Context, sessionID, token string, req Request, progress ProgressFunc) (*Result, error) {
	req = s.normalize(req)
	if progress == nil {
		progress = func(models.ReportProgress) {}
	}

	key := s.reportKey(sessionID, req)
	if v, ok := s.cache.Get(key); ok {
		metrics.RecordWrappedCacheHit(req.Year)
		progress(models.ReportProgress{Stage: models.StageDone})
		return &Result{Report: v.(*models.Report), Cached: true}, nil
	}
	metrics.RecordWrappedCacheMiss(req.Year)

	start := time.Now()
	ch := s.group.DoChan(key, func() (interface{}, error) {
		// Detached from the caller and bounded by the generation timeout.
		buildCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.generationTimeout)
		defer cancel()

		report, err := s.build(buildCtx, token, req, progress)
		metrics.RecordWrappedGeneration(req.Year, time.Since(start), classify(err), err)
		if err != nil {
			return nil, err
		}
		s.cache.Set(key, report)
		return report, nil
	})

	select {
	case <-ctx.Done():
		err := ctx.Err()
		progress(models.ReportProgress{Stage: models.StageError, Message: err.Error()})
		return nil, err
	case res := <-ch:
		if res.Err != nil {
			progress(models.ReportProgress{Stage: models.StageError, Message: res.Err.Error()})
			return nil, res.Err
		}
		progress(models.ReportProgress{Stage: models.StageDone})
		return &Result{Report: res.Val.(*models.Report), Duration: time.Since(start)}, nil
	}
}

// build runs one uncached fetch and analysis pass.
func (s *Service) build(ctx context.Context, token string, req Request, progress ProgressFunc) (*models.Report, error) {
	log := logging.Ctx(ctx)

	progress(models.ReportProgress{Stage: models.StageProfile})
	profile, err := s.fetcher.Profile(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}

	progress(models.ReportProgress{Stage: models.StageFetching})
	checkins, err := s.fetcher.Checkins(ctx, token, foursquare.YearWindow(req.Year), func(fetched int) {
		progress(models.ReportProgress{Stage: models.StageFetching, Fetched: fetched})
	})
	if err != nil {
		return nil, fmt.Errorf("fetch check-ins: %w", err)
	}
	if len(checkins) == 0 {
		return nil, ErrNoCheckins
	}

	progress(models.ReportProgress{Stage: models.StageAnalyzing, Fetched: len(checkins)})
	report := analytics.Analyze(checkins, analytics.Options{
		Year:             req.Year,
		Username:         profile.Username(),
		LifetimeCheckins: profile.LifetimeCheckins,
		ExcludeSensitive: req.ExcludeSensitive,
		Now:              s.now(),
	})
	if report.TotalCheckins == 0 {
		return nil, ErrNoCheckins
	}
	metrics.RecordWrappedCheckins(report.TotalCheckins)

	log.Info().
		Int("year", req.Year).
		Int("fetched", len(checkins)).
		Int("analyzed", report.TotalCheckins).
		Bool("exclude_sensitive", req.ExcludeSensitive).
		Msg("Wrapped report generated")

	return report, nil
}

// Forget purges every cached report and share link owned by the session and
// returns the number of entries removed.
func (s *Service) Forget(sessionID string) int {
	removed := s.cache.DeletePrefix(reportPrefix(sessionID) + ":")
	for _, key := range s.cache.Keys(ownerPrefix(sessionID)) {
		s.cache.Delete(shareKey(key[len(ownerPrefix(sessionID)):]))
		removed++
	}
	s.cache.DeletePrefix(ownerPrefix(sessionID))
	return removed
}

// PruneSessions forgets the data of every session that alive rejects and
// returns the number of entries removed. It catches sessions that ended
// without a logout, such as expiry.
func (s *Service) PruneSessions(alive func(sessionID string) bool) int {
	seen := make(map[string]bool)
	removed := 0
	check := func(sessionID string) {
		if sessionID == "" || seen[sessionID] {
			return
		}
		seen[sessionID] = true
		if !alive(sessionID) {
			removed += s.Forget(sessionID)
		}
	}
	for _, key := range s.cache.Keys("report:") {
		check(sessionFromKey(strings.TrimPrefix(key, "report:")))
	}
	for _, key := range s.cache.Keys("owner:") {
		check(sessionFromKey(strings.TrimPrefix(key, "owner:")))
	}
	return removed
}

// sessionFromKey returns the session ID that leads a key suffix.
func sessionFromKey(rest string) string {
	id, _, _ := strings.Cut(rest, ":")
	return id
}

// classify maps a generation error to the metrics error_type label.
func classify(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNoCheckins):
		return "no_checkins"
	case errors.Is(err, foursquare.ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, foursquare.ErrRateLimited):
		return "rate_limited"
	case errors.Is(err, foursquare.ErrCircuitOpen):
		return "circuit_open"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	if _, ok := foursquare.IsAPIError(err); ok {
		return "upstream"
	}
	return "unknown"
}
