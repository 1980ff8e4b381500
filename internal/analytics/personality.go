// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package analytics

import (
	"strings"

	"github.com/tomtom215/swarmwrapped/internal/models"
)

// Personality type IDs, in scoring order.
const (
	PersonalityCoffeeConnoisseur = "coffee_connoisseur"
	PersonalityGlobeTrotter      = "globe_trotter"
	PersonalityFoodie            = "foodie"
	PersonalityNightOwl          = "night_owl"
	PersonalityEarlyBird         = "early_bird"
	PersonalityFitnessFanatic    = "fitness_fanatic"
	PersonalitySocialButterfly   = "social_butterfly"
	PersonalityAdventurer        = "adventurer"
	PersonalityTheRegular        = "the_regular"
	PersonalityHomebody          = "homebody"
	PersonalityJetSetter         = "jet_setter"
)

// personalityType describes one personality and how it is scored.
// score returns 0 when the type does not apply.
type personalityType struct {
	models.Personality
	score func(s personalityStats) float64
}

// personalityStats is the subset of the report personality scoring needs.
type personalityStats struct {
	total         int
	uniqueVenues  int
	uniqueCities  int
	countries     int
	crewPercent   float64
	homeCityCount int
	timeOfDay     models.TimeOfDay
	categories    *counter
}

func (s personalityStats) uniqueRatio() float64 {
	if s.total == 0 {
		return 0
	}
	return float64(s.uniqueVenues) / float64(s.total)
}

// categoryShare scores the share of check-ins whose category contains one
// of the keywords, when it meets minShare.
func categoryShare(minShare float64, keywords ...string) func(personalityStats) float64 {
	lower := make([]string, len(keywords))
	for i, k := range keywords {
		lower[i] = strings.ToLower(k)
	}
	return func(s personalityStats) float64 {
		if s.total == 0 {
			return 0
		}
		matched := 0
		for _, name := range s.categories.order {
			if containsAny(strings.ToLower(name), lower) {
				matched += s.categories.get(name)
			}
		}
		share := float64(matched) / float64(s.total)
		if share >= minShare {
			return share
		}
		return 0
	}
}

// timeShare scores the share of one time-of-day bucket above 35%.
func timeShare(bucket func(models.TimeOfDay) int) func(personalityStats) float64 {
	return func(s personalityStats) float64 {
		total := s.timeOfDay.Total()
		if total == 0 {
			return 0
		}
		share := float64(bucket(s.timeOfDay)) / float64(total)
		if share > 0.35 {
			return share
		}
		return 0
	}
}

// personalityTypes are scored in declaration order; the first highest score wins.
var personalityTypes = []personalityType{
	{
		Personality: models.Personality{
			Type: PersonalityCoffeeConnoisseur, Name: "The Coffee Connoisseur", Emoji: "☕",
			Description: "Your year was fueled by caffeine. Coffee shops were your go-to destination.",
		},
		score: categoryShare(0.15, "Coffee Shop", "Café", "Tea Room", "Bakery"),
	},
	{
		Personality: models.Personality{
			Type: PersonalityGlobeTrotter, Name: "The Globe Trotter", Emoji: "🌍",
			Description: "You're a true explorer. Multiple countries and countless cities on your map.",
		},
		score: func(s personalityStats) float64 {
			score := 0.0
			if s.countries >= 3 {
				score = 0.8
			}
			if s.uniqueCities >= 30 {
				score = 0.9
			}
			return score
		},
	},
	{
		Personality: models.Personality{
			Type: PersonalityFoodie, Name: "The Foodie", Emoji: "🍽️",
			Description: "Life's too short for bad food. Restaurants dominated your check-ins.",
		},
		score: categoryShare(0.20, "Restaurant", "Food", "Diner", "Bistro", "Eatery"),
	},
	{
		Personality: models.Personality{
			Type: PersonalityNightOwl, Name: "The Night Owl", Emoji: "🦉",
			Description: "The night is young! Most of your adventures happened after dark.",
		},
		score: timeShare(func(t models.TimeOfDay) int { return t.Night }),
	},
	{
		Personality: models.Personality{
			Type: PersonalityEarlyBird, Name: "The Early Bird", Emoji: "🌅",
			Description: "Rise and shine! You make the most of mornings.",
		},
		score: timeShare(func(t models.TimeOfDay) int { return t.Morning }),
	},
	{
		Personality: models.Personality{
			Type: PersonalityFitnessFanatic, Name: "The Fitness Fanatic", Emoji: "💪",
			Description: "No excuses! Gyms and outdoor activities kept you moving.",
		},
		score: categoryShare(0.15, "Gym", "Fitness", "Yoga", "Park", "Trail", "Pool"),
	},
	{
		Personality: models.Personality{
			Type: PersonalitySocialButterfly, Name: "The Social Butterfly", Emoji: "🦋",
			Description: "Never alone! Most of your check-ins were with friends and family.",
		},
		score: func(s personalityStats) float64 {
			if s.crewPercent >= 60 {
				return s.crewPercent / 100
			}
			return 0
		},
	},
	{
		Personality: models.Personality{
			Type: PersonalityAdventurer, Name: "The Adventurer", Emoji: "🧭",
			Description: "Variety is the spice of life. You rarely visit the same place twice.",
		},
		score: func(s personalityStats) float64 {
			if r := s.uniqueRatio(); r >= 0.7 {
				return r
			}
			return 0
		},
	},
	{
		Personality: models.Personality{
			Type: PersonalityTheRegular, Name: "The Regular", Emoji: "🪑",
			Description: "You've got your spots. The staff knows your order and your name.",
		},
		score: func(s personalityStats) float64 {
			if r := s.uniqueRatio(); s.total > 0 && r <= 0.35 {
				return 1 - r
			}
			return 0
		},
	},
	{
		Personality: models.Personality{
			Type: PersonalityHomebody, Name: "The Homebody", Emoji: "🏠",
			Description: "Home is where the heart is. You know your neighborhood inside and out.",
		},
		score: func(s personalityStats) float64 {
			if s.total == 0 {
				return 0
			}
			share := float64(s.homeCityCount) / float64(s.total)
			if share >= 0.8 {
				return share
			}
			return 0
		},
	},
	{
		Personality: models.Personality{
			Type: PersonalityJetSetter, Name: "The Jet Setter", Emoji: "✈️",
			Description: "Always on the move! Airports are practically your second home.",
		},
		score: categoryShare(0.10, "Airport", "Plane", "Terminal"),
	},
}

// PersonalityByType returns the personality with the given ID.
func PersonalityByType(id string) (models.Personality, bool) {
	for _, p := range personalityTypes {
		if p.Type == id {
			return p.Personality, true
		}
	}
	return models.Personality{}, false
}

// determinePersonality scores every type and returns the best one.
// Adventurer is returned when nothing scores.
func determinePersonality(report *models.Report, cats *counter) models.Personality {
	fallback, _ := PersonalityByType(PersonalityAdventurer)
	if report.TotalCheckins == 0 {
		return fallback
	}

	stats := personalityStats{
		total:        report.TotalCheckins,
		uniqueVenues: report.UniqueVenues,
		uniqueCities: report.UniqueCities,
		countries:    report.UniqueCountries,
		crewPercent:  report.CrewPercentage,
		timeOfDay:    report.TimeOfDay,
		categories:   cats,
	}
	if len(report.TopCities) > 0 {
		stats.homeCityCount = report.TopCities[0].Count
	}

	best := fallback
	bestScore := 0.0
	for _, p := range personalityTypes {
		if s := p.score(stats); s > bestScore {
			bestScore = s
			best = p.Personality
		}
	}
	return best
}
