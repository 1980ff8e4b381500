// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package analytics

import (
	"fmt"

	"github.com/tomtom215/swarmwrapped/internal/models"
)

// computeBadges returns the badges earned by the report. Each badge is
// awarded once its bronze threshold is met.
func computeBadges(report *models.Report) []models.Badge {
	// Badge definitions with thresholds - table-driven for maintainability
	checks := []struct {
		value                int
		bronze, silver, gold int
		badge                models.Badge
	}{
		{
			value: report.LongestStreakDays, bronze: 7, silver: 30, gold: 100,
			badge: models.Badge{
				ID:          models.BadgeStreak,
				Name:        "Streak Keeper",
				Description: fmt.Sprintf("Checked in %d days in a row", report.LongestStreakDays),
				Icon:        "flame",
			},
		},
		{
			value: report.UniqueVenues, bronze: 50, silver: 150, gold: 365,
			badge: models.Badge{
				ID:          models.BadgeExplorer,
				Name:        "Explorer",
				Description: fmt.Sprintf("Visited %d different places", report.UniqueVenues),
				Icon:        "compass",
			},
		},
		{
			value: report.UniqueCountries, bronze: 2, silver: 5, gold: 10,
			badge: models.Badge{
				ID:          models.BadgeGlobetrotter,
				Name:        "Globetrotter",
				Description: fmt.Sprintf("Checked in from %d countries", report.UniqueCountries),
				Icon:        "globe",
			},
		},
		{
			value: report.CheckinsWithCrew, bronze: 25, silver: 100, gold: 250,
			badge: models.Badge{
				ID:          models.BadgeSocial,
				Name:        "Better Together",
				Description: fmt.Sprintf("%d check-ins with friends", report.CheckinsWithCrew),
				Icon:        "users",
			},
		},
		{
			value: report.TotalPhotos, bronze: 10, silver: 50, gold: 200,
			badge: models.Badge{
				ID:          models.BadgePhotographer,
				Name:        "Photographer",
				Description: fmt.Sprintf("Shared %d photos", report.TotalPhotos),
				Icon:        "camera",
			},
		},
	}

	badges := make([]models.Badge, 0, len(checks))
	for _, c := range checks {
		if c.value < c.bronze {
			continue
		}
		b := c.badge
		b.Tier = getTier(c.value, c.silver, c.gold)
		b.Value = c.value
		badges = append(badges, b)
	}
	return badges
}

func getTier(value, silver, gold int) string {
	if value >= gold {
		return models.TierGold
	}
	if value >= silver {
		return models.TierSilver
	}
	return models.TierBronze
}
