// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package analytics

import (
	"sort"
	"time"

	"github.com/tomtom215/swarmwrapped/internal/models"
)

// Ranking sizes.
const (
	TopVenuesLimit     = 10
	TopCategoriesLimit = 10
	TopCitiesLimit     = 10
	TopCrewLimit       = 5
)

// Options controls report generation.
type Options struct {
	Year             int
	Username         string
	LifetimeCheckins int
	ExcludeSensitive bool
	// Now stamps GeneratedAt. Zero means time.Now().
	Now time.Time
}

// Analyze builds the wrapped report for the given check-ins.
// The input slice is not modified.
func Analyze(checkins []models.CheckIn, opts Options) *models.Report {
	sorted := SortChronological(checkins)
	if opts.ExcludeSensitive {
		sorted = FilterSensitive(sorted)
	}

	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	report := &models.Report{
		Year:             opts.Year,
		GeneratedAt:      now.UTC(),
		Username:         opts.Username,
		LifetimeCheckins: opts.LifetimeCheckins,
		ExcludeSensitive: opts.ExcludeSensitive,
		TotalCheckins:    len(sorted),
	}

	cats := computeCounts(report, sorted)
	computeActivity(report, sorted)
	computeTemporal(report, sorted)
	computeSocial(report, sorted)
	computeEngagement(report, sorted)
	computeMoments(report, sorted)
	computePlaces(report, sorted)
	report.MapPoints = MapPoints(sorted)

	report.Personality = determinePersonality(report, cats)
	report.YearSummary = yearSummary(report, cats)
	report.Badges = computeBadges(report)
	report.ShareableText = shareableText(report)

	return report
}

// SortChronological returns a copy of checkins ordered oldest first.
// Check-ins with equal timestamps keep their input order.
func SortChronological(checkins []models.CheckIn) []models.CheckIn {
	out := make([]models.CheckIn, len(checkins))
	copy(out, checkins)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt < out[j].CreatedAt
	})
	return out
}

// computeCounts fills the distinct counts and the top venue, category, city
// and country rankings. The category counter is returned for later passes.
func computeCounts(report *models.Report, checkins []models.CheckIn) *counter {
	venues := newCounter()
	venueInfo := make(map[string]models.Venue)
	cats := newCounter()
	cities := newCounter()
	countries := newCounter()

	for _, c := range checkins {
		key := c.Venue.Key()
		venues.add(key, c.Venue.DisplayName())
		if _, ok := venueInfo[key]; !ok {
			venueInfo[key] = c.Venue
		}
		category := c.Venue.PrimaryCategory()
		cats.add(category, category)
		city := c.Venue.CityKey()
		cities.add(city, city)
		country := c.Venue.CountryName()
		countries.add(country, country)
	}

	report.UniqueVenues = venues.len()
	report.UniqueCategories = cats.len()
	report.UniqueCities = cities.len()
	report.UniqueCountries = countries.len()

	report.TopCategories = cats.top(TopCategoriesLimit)
	report.TopCities = cities.top(TopCitiesLimit)
	report.Countries = countries.top(0)

	report.TopVenues = make([]models.RankedVenue, 0, TopVenuesLimit)
	for _, item := range venues.topKeys(TopVenuesLimit) {
		v := venueInfo[item.key]
		report.TopVenues = append(report.TopVenues, models.RankedVenue{
			RankedItem: item.RankedItem,
			Category:   v.PrimaryCategory(),
			City:       v.Location.City,
			State:      v.Location.State,
			Country:    v.Location.Country,
		})
	}

	oneTime := 0
	for _, key := range venues.order {
		if venues.counts[key] == 1 {
			oneTime++
		}
	}
	report.OneTimeVenues = oneTime
	report.OneTimePercentage = percent(oneTime, venues.len())

	return cats
}

// computeSocial fills crew statistics.
func computeSocial(report *models.Report, checkins []models.CheckIn) {
	crew := newCounter()
	withCrew := 0

	for _, c := range checkins {
		if !c.HasCrew() {
			continue
		}
		withCrew++
		for _, f := range c.With {
			key := f.Key()
			if key == "" {
				continue
			}
			name := f.DisplayName()
			if name == "" {
				name = key
			}
			crew.add(key, name)
		}
	}

	total := len(checkins)
	report.CheckinsWithCrew = withCrew
	report.CrewPercentage = percent(withCrew, total)
	report.SoloCheckins = total - withCrew
	report.SoloPercentage = percent(total-withCrew, total)
	report.TopCrew = crew.top(TopCrewLimit)
}

// computeEngagement fills shout and photo counts.
func computeEngagement(report *models.Report, checkins []models.CheckIn) {
	shouts, photos := 0, 0
	for _, c := range checkins {
		if c.Shout != "" {
			shouts++
		}
		photos += c.PhotoCount()
	}
	report.CheckinsWithShouts = shouts
	report.ShoutPercentage = percent(shouts, len(checkins))
	report.TotalPhotos = photos
}

// computeMoments fills the first and last check-in of the year.
func computeMoments(report *models.Report, checkins []models.CheckIn) {
	if len(checkins) == 0 {
		return
	}
	report.FirstCheckin = moment(checkins[0])
	report.LastCheckin = moment(checkins[len(checkins)-1])
}

func moment(c models.CheckIn) *models.Moment {
	local := c.LocalTime()
	return &models.Moment{
		Venue: c.Venue.DisplayName(),
		Date:  OrdinalDate(local),
		Time:  local.Format("3:04 PM"),
	}
}
