// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/swarmwrapped/internal/logging"
)

// DefaultJanitorInterval is used when a janitor is given no interval.
const DefaultJanitorInterval = 5 * time.Minute

// CleanupFunc removes expired entries and returns how many it removed.
type CleanupFunc func(ctx context.Context) (int, error)

// JanitorService runs a cleanup function on a fixed interval. It backs the
// session janitor and the report cache janitor.
type JanitorService struct {
	name     string
	interval time.Duration
	cleanup  CleanupFunc
	logger   zerolog.Logger
}

// NewJanitorService creates a periodic cleanup service.
func NewJanitorService(name string, interval time.Duration, cleanup CleanupFunc) *JanitorService {
	if interval <= 0 {
		interval = DefaultJanitorInterval
	}
	return &JanitorService{
		name:     name,
		interval: interval,
		cleanup:  cleanup,
		logger:   logging.WithComponent(name),
	}
}

// Serve implements suture.Service. Cleanup errors are logged and the loop
// continues; only context cancellation stops it.
func (j *JanitorService) Serve(ctx context.Context) error {
	j.logger.Debug().Dur("interval", j.interval).Msg("janitor starting")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

// runOnce performs a single cleanup pass.
func (j *JanitorService) runOnce(ctx context.Context) {
	start := time.Now()
	removed, err := j.cleanup(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Msg("cleanup failed")
		return
	}
	if removed > 0 {
		j.logger.Info().
			Int("removed", removed).
			Dur("duration", time.Since(start)).
			Msg("expired entries removed")
	}
}

// String identifies the service in suture's event log.
func (j *JanitorService) String() string {
	return j.name
}
