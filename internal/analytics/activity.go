// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package analytics

import (
	"time"

	"github.com/tomtom215/swarmwrapped/internal/models"
)

// Streak is a run of consecutive active days.
type Streak struct {
	Days  int
	Start string // YYYY-MM-DD
	End   string
}

// computeActivity fills days active, span, streak, gap and busiest dates.
func computeActivity(report *models.Report, checkins []models.CheckIn) {
	dates, perDay, venuesPerDay := dailyBuckets(checkins)

	report.DaysActive = len(dates)
	report.TotalDaysSpan = DaySpan(dates)
	report.ActivityPercentage = percent(report.DaysActive, report.TotalDaysSpan)
	if report.DaysActive > 0 {
		report.AvgCheckinsPerActiveDay = round1(float64(len(checkins)) / float64(report.DaysActive))
	}

	streak := LongestStreak(dates)
	report.LongestStreakDays = streak.Days
	report.LongestStreakStart = streak.Start
	report.LongestStreakEnd = streak.End

	report.LongestGap = LongestGap(dates)

	var busiest, mostVenues *models.DateCount
	for _, d := range dates {
		if busiest == nil || perDay[d] > busiest.Count {
			busiest = dateCount(d, perDay[d])
		}
		if mostVenues == nil || len(venuesPerDay[d]) > mostVenues.Count {
			mostVenues = dateCount(d, len(venuesPerDay[d]))
		}
	}
	report.BusiestDate = busiest
	report.MostVenuesInADay = mostVenues
}

// dailyBuckets returns the sorted distinct local dates, check-ins per date
// and distinct venues per date. Input must be chronological.
func dailyBuckets(checkins []models.CheckIn) ([]string, map[string]int, map[string]map[string]struct{}) {
	perDay := make(map[string]int)
	venuesPerDay := make(map[string]map[string]struct{})
	var dates []string

	for _, c := range checkins {
		d := c.LocalDate()
		if _, ok := perDay[d]; !ok {
			dates = append(dates, d)
			venuesPerDay[d] = make(map[string]struct{})
		}
		perDay[d]++
		venuesPerDay[d][c.Venue.Key()] = struct{}{}
	}

	// Timezone offsets can make local dates non-monotonic in UTC order.
	sortDates(dates)
	return dates, perDay, venuesPerDay
}

func dateCount(date string, count int) *models.DateCount {
	dc := &models.DateCount{Date: date, Count: count}
	if t, err := time.Parse(time.DateOnly, date); err == nil {
		dc.DateLabel = OrdinalDate(t)
	}
	return dc
}

// LocalDates returns the sorted distinct local dates of the check-ins.
func LocalDates(checkins []models.CheckIn) []string {
	dates, _, _ := dailyBuckets(checkins)
	return dates
}

// LongestStreak returns the longest run of consecutive dates in a sorted,
// duplicate-free list of YYYY-MM-DD strings. The first maximal run wins.
func LongestStreak(dates []string) Streak {
	if len(dates) == 0 {
		return Streak{}
	}

	best := Streak{Days: 1, Start: dates[0], End: dates[0]}
	runStart := dates[0]
	run := 1

	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) == 1 {
			run++
		} else {
			run = 1
			runStart = dates[i]
		}
		if run > best.Days {
			best = Streak{Days: run, Start: runStart, End: dates[i]}
		}
	}
	return best
}

// LongestGap returns the longest stretch of days without check-ins between
// two active days, or nil when there is none.
func LongestGap(dates []string) *models.DateGap {
	var gap *models.DateGap
	for i := 1; i < len(dates); i++ {
		days := daysBetween(dates[i-1], dates[i]) - 1
		if days > 0 && (gap == nil || days > gap.Days) {
			gap = &models.DateGap{Days: days, Start: dates[i-1], End: dates[i]}
		}
	}
	return gap
}

// DaySpan returns the inclusive number of days from the first to the last
// date of a sorted list.
func DaySpan(dates []string) int {
	if len(dates) == 0 {
		return 0
	}
	return daysBetween(dates[0], dates[len(dates)-1]) + 1
}

// daysBetween returns b - a in whole days. Both must be YYYY-MM-DD.
func daysBetween(a, b string) int {
	ta, errA := time.Parse(time.DateOnly, a)
	tb, errB := time.Parse(time.DateOnly, b)
	if errA != nil || errB != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}
