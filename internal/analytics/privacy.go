// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package analytics

import (
	"strings"

	"github.com/tomtom215/swarmwrapped/internal/models"
)

// SensitiveKeywords are matched case-insensitively against category and
// venue names when sensitive venues are excluded.
var SensitiveKeywords = []string{
	"church", "cathedral", "mosque", "synagogue", "temple", "chapel",
	"spiritual center", "religious", "school", "elementary", "middle school",
	"high school", "preschool", "daycare", "nursery", "kindergarten",
}

// IsSensitive reports whether the venue is a place of worship or a school.
func IsSensitive(v models.Venue) bool {
	for _, c := range v.Categories {
		if containsAny(strings.ToLower(c.Name), SensitiveKeywords) {
			return true
		}
	}
	return containsAny(strings.ToLower(v.Name), SensitiveKeywords)
}

// FilterSensitive returns the check-ins whose venue is not sensitive.
func FilterSensitive(checkins []models.CheckIn) []models.CheckIn {
	out := make([]models.CheckIn, 0, len(checkins))
	for _, c := range checkins {
		if !IsSensitive(c.Venue) {
			out = append(out, c)
		}
	}
	return out
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
