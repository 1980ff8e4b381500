// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package report

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/tomtom215/swarmwrapped/internal/logging"
	"github.com/tomtom215/swarmwrapped/internal/metrics"
	"github.com/tomtom215/swarmwrapped/internal/models"
)

// ShareTokenBytes is the number of random bytes in a share token. The
// token itself is their hex encoding.
const ShareTokenBytes = 12

// Cache key layout for share links:
//
//	share:<token>              -> *models.Report snapshot
//	owner:<session>:<token>    -> report cache key the snapshot was taken from
func shareKey(token string) string {
	return "share:" + token
}

func ownerPrefix(sessionID string) string {
	return "owner:" + sessionID + ":"
}

// generateShareToken returns 24 lowercase hex characters.
func generateShareToken() (string, error) {
	b := make([]byte, ShareTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate share token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Share returns a read-only link to the session's report for req. The
// report is generated if needed. Sharing the same report twice returns the
// existing link.
func (s *Service) Share(ctx context.Context, sessionID, token string, req Request) (*models.ShareLink, error) {
	req = s.normalize(req)
	key := s.reportKey(sessionID, req)

	if link, ok := s.existingShare(sessionID, key); ok {
		return link, nil
	}

	result, err := s.Generate(ctx, sessionID, token, req, nil)
	if err != nil {
		return nil, err
	}

	shareToken, err := generateShareToken()
	if err != nil {
		return nil, err
	}

	snapshot := *result.Report
	snapshot.ShareToken = shareToken

	s.cache.SetWithTTL(shareKey(shareToken), &snapshot, s.shareTTL)
	s.cache.SetWithTTL(ownerPrefix(sessionID)+shareToken, key, s.shareTTL)
	metrics.RecordWrappedShareTokenCreated()

	logging.Ctx(ctx).Info().Int("year", req.Year).Msg("Wrapped report shared")

	return s.link(shareToken)
}

// existingShare finds a live link this session already made for the report.
func (s *Service) existingShare(sessionID, key string) (*models.ShareLink, bool) {
	prefix := ownerPrefix(sessionID)
	for _, ownerKey := range s.cache.Keys(prefix) {
		v, ok := s.cache.Get(ownerKey)
		if !ok || v.(string) != key {
			continue
		}
		link, err := s.link(strings.TrimPrefix(ownerKey, prefix))
		if err == nil {
			return link, true
		}
	}
	return nil, false
}

// link builds the public link for a live share token.
func (s *Service) link(shareToken string) (*models.ShareLink, error) {
	expiresAt, ok := s.cache.ExpiresAt(shareKey(shareToken))
	if !ok {
		return nil, ErrShareNotFound
	}
	return &models.ShareLink{
		Token:     shareToken,
		URL:       strings.TrimRight(s.publicURL, "/") + "/shared/" + shareToken,
		ExpiresAt: expiresAt,
	}, nil
}

// Shared returns the snapshot behind a share token.
func (s *Service) Shared(shareToken string) (*models.Report, error) {
	v, ok := s.cache.Get(shareKey(shareToken))
	if !ok {
		return nil, ErrShareNotFound
	}
	metrics.RecordWrappedShareAccess()
	return v.(*models.Report), nil
}
