// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package analytics

import (
	"github.com/tomtom215/swarmwrapped/internal/models"
)

// Time personalities, one per time-of-day bucket.
const (
	TimePersonalityEarlyBird       = "Early Bird"
	TimePersonalityDayExplorer     = "Day Explorer"
	TimePersonalityEveningWanderer = "Evening Wanderer"
	TimePersonalityNightOwl        = "Night Owl"
	TimePersonalityExplorer        = "Explorer"
)

// computeTemporal fills the hour, weekday and month distributions and the
// values derived from them.
func computeTemporal(report *models.Report, checkins []models.CheckIn) {
	for _, c := range checkins {
		local := c.LocalTime()
		report.HourlyDistribution[local.Hour()]++
		report.DailyDistribution[mondayIndex(int(local.Weekday()))]++
		report.MonthlyDistribution[int(local.Month())-1]++
	}

	report.PeakHour = argmax(report.HourlyDistribution[:])
	report.PeakHourLabel = HourLabel(report.PeakHour)

	if len(checkins) == 0 {
		report.BusiestDay = "Unknown"
		report.BusiestMonth = "Unknown"
	} else {
		report.BusiestDay = models.DayNames[argmax(report.DailyDistribution[:])]
		report.BusiestMonth = models.MonthNames[argmax(report.MonthlyDistribution[:])]
	}

	report.TimeOfDay = TimeOfDayBuckets(report.HourlyDistribution)
	report.TimePersonality = TimePersonality(report.TimeOfDay)

	weekend := report.DailyDistribution[5] + report.DailyDistribution[6]
	weekday := 0
	for _, n := range report.DailyDistribution[:5] {
		weekday += n
	}
	report.WeekendPercentage = percent(weekend, weekend+weekday)
	report.WeekdayPercentage = percent(weekday, weekend+weekday)
}

// TimeOfDayBuckets groups an hourly distribution into
// morning (05-11), afternoon (12-16), evening (17-20) and night (21-04).
func TimeOfDayBuckets(hourly [24]int) models.TimeOfDay {
	var tod models.TimeOfDay
	for hour, n := range hourly {
		switch {
		case hour >= 5 && hour < 12:
			tod.Morning += n
		case hour >= 12 && hour < 17:
			tod.Afternoon += n
		case hour >= 17 && hour < 21:
			tod.Evening += n
		default:
			tod.Night += n
		}
	}
	return tod
}

// TimePersonality names the largest time-of-day bucket. Ties resolve in
// morning, afternoon, evening, night order.
func TimePersonality(tod models.TimeOfDay) string {
	if tod.Total() == 0 {
		return TimePersonalityExplorer
	}
	buckets := []struct {
		count int
		name  string
	}{
		{tod.Morning, TimePersonalityEarlyBird},
		{tod.Afternoon, TimePersonalityDayExplorer},
		{tod.Evening, TimePersonalityEveningWanderer},
		{tod.Night, TimePersonalityNightOwl},
	}
	best := buckets[0]
	for _, b := range buckets[1:] {
		if b.count > best.count {
			best = b
		}
	}
	return best.name
}

// mondayIndex converts time.Weekday (0=Sunday) to 0=Monday.
func mondayIndex(weekday int) int {
	return (weekday + 6) % 7
}

// argmax returns the index of the largest value, the earliest on ties.
func argmax(values []int) int {
	best := 0
	for i, v := range values {
		if v > values[best] {
			best = i
		}
	}
	return best
}
