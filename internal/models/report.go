// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package models

import (
	"time"
)

// Report represents a complete yearly wrapped report for one Swarm user.
// This is the main response structure containing all yearly statistics and insights.
//
// Reports are computed in memory from a single fetch of the user's check-ins
// and cached per session. A share token is attached when the user publishes
// the report as a read-only link.
type Report struct {
	// Identification
	Year             int       `json:"year"`
	GeneratedAt      time.Time `json:"generated_at"`
	Username         string    `json:"username"`
	LifetimeCheckins int       `json:"lifetime_checkins"`
	ExcludeSensitive bool      `json:"exclude_sensitive"`
	ShareToken       string    `json:"share_token,omitempty"`

	// Core Statistics
	TotalCheckins           int     `json:"total_checkins"`
	UniqueVenues            int     `json:"unique_venues"`
	UniqueCities            int     `json:"unique_cities"`
	UniqueCountries         int     `json:"unique_countries"`
	UniqueCategories        int     `json:"unique_categories"`
	DaysActive              int     `json:"days_active"`
	TotalDaysSpan           int     `json:"total_days_span"`
	ActivityPercentage      float64 `json:"activity_percentage"` // 0-100
	AvgCheckinsPerActiveDay float64 `json:"avg_checkins_per_active_day"`

	// Streaks and Gaps
	LongestStreakDays  int      `json:"longest_streak_days"`
	LongestStreakStart string   `json:"longest_streak_start,omitempty"` // YYYY-MM-DD
	LongestStreakEnd   string   `json:"longest_streak_end,omitempty"`
	LongestGap         *DateGap `json:"longest_gap,omitempty"`

	// Rankings
	TopVenues     []RankedVenue `json:"top_venues"`
	TopCategories []RankedItem  `json:"top_categories"`
	TopCities     []RankedItem  `json:"top_cities"`
	Countries     []RankedItem  `json:"countries"`
	TopCrew       []RankedItem  `json:"top_crew"`

	// Temporal Patterns
	HourlyDistribution  [24]int   `json:"hourly_distribution"`  // Check-ins per local hour (0-23)
	DailyDistribution   [7]int    `json:"daily_distribution"`   // Check-ins per weekday (0=Monday)
	MonthlyDistribution [12]int   `json:"monthly_distribution"` // Check-ins per month (0=January)
	PeakHour            int       `json:"peak_hour"`
	PeakHourLabel       string    `json:"peak_hour_label"` // e.g. "3pm"
	BusiestDay          string    `json:"busiest_day"`
	BusiestMonth        string    `json:"busiest_month"`
	TimeOfDay           TimeOfDay `json:"time_of_day"`
	TimePersonality     string    `json:"time_personality"`
	WeekendPercentage   float64   `json:"weekend_percentage"`
	WeekdayPercentage   float64   `json:"weekday_percentage"`

	// Social
	CheckinsWithCrew int     `json:"checkins_with_crew"`
	CrewPercentage   float64 `json:"crew_percentage"`
	SoloCheckins     int     `json:"solo_checkins"`
	SoloPercentage   float64 `json:"solo_percentage"`

	// Engagement
	CheckinsWithShouts int     `json:"checkins_with_shouts"`
	ShoutPercentage    float64 `json:"shout_percentage"`
	TotalPhotos        int     `json:"total_photos"`

	// Moments
	FirstCheckin     *Moment    `json:"first_checkin,omitempty"`
	LastCheckin      *Moment    `json:"last_checkin,omitempty"`
	BusiestDate      *DateCount `json:"busiest_date,omitempty"`
	MostVenuesInADay *DateCount `json:"most_venues_in_a_day,omitempty"`

	// Places
	HomeCity                string         `json:"home_city,omitempty"`
	FurthestVenue           *FurthestVenue `json:"furthest_venue,omitempty"`
	OneTimeVenues           int            `json:"one_time_venues"`
	OneTimePercentage       float64        `json:"one_time_percentage"`
	InternationalCheckins   int            `json:"international_checkins"`
	InternationalPercentage float64        `json:"international_percentage"`
	MapPoints               []MapPoint     `json:"map_points"`

	// Insights
	Personality   Personality `json:"personality"`
	Badges        []Badge     `json:"badges"`
	YearSummary   string      `json:"year_summary"`
	ShareableText string      `json:"shareable_text"`
}

// RankedItem is an entry in a top-N ranking. Rank is 1-based.
type RankedItem struct {
	Rank  int    `json:"rank"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RankedVenue is a top venue with its location details.
type RankedVenue struct {
	RankedItem
	Category string `json:"category"`
	City     string `json:"city"`
	State    string `json:"state,omitempty"`
	Country  string `json:"country"`
}

// TimeOfDay counts check-ins per local time-of-day bucket.
//
//	Morning    05:00-11:59
//	Afternoon  12:00-16:59
//	Evening    17:00-20:59
//	Night      21:00-04:59
type TimeOfDay struct {
	Morning   int `json:"morning"`
	Afternoon int `json:"afternoon"`
	Evening   int `json:"evening"`
	Night     int `json:"night"`
}

// Total returns the sum of all buckets.
func (t TimeOfDay) Total() int {
	return t.Morning + t.Afternoon + t.Evening + t.Night
}

// DateGap is a run of days without check-ins between two active days.
type DateGap struct {
	Days  int    `json:"days"`
	Start string `json:"start"` // last active day before the gap
	End   string `json:"end"`   // first active day after the gap
}

// Moment describes a notable check-in.
type Moment struct {
	Venue string `json:"venue"`
	Date  string `json:"date"` // "January 1st"
	Time  string `json:"time"` // "3:04 PM"
}

// DateCount pairs a local date with a count.
type DateCount struct {
	Date      string `json:"date"`       // YYYY-MM-DD
	DateLabel string `json:"date_label"` // "April 20th"
	Count     int    `json:"count"`
}

// FurthestVenue is the venue furthest from the home city centroid.
type FurthestVenue struct {
	Name          string `json:"name"`
	City          string `json:"city"`
	Country       string `json:"country"`
	DistanceMiles int    `json:"distance_miles"`
}

// MapPoint is a deduplicated map coordinate rounded to 4 decimal places.
type MapPoint struct {
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
	Venues   []string `json:"venues"`
	Checkins int      `json:"checkins"`
}

// Personality is the check-in personality assigned to the user.
type Personality struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Emoji       string `json:"emoji"`
	Description string `json:"description"`
}

// Badge represents an achievement earned in the wrapped report.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Tier        string `json:"tier"` // bronze, silver, gold
	Value       int    `json:"value"`
}

// Badge tiers.
const (
	TierBronze = "bronze"
	TierSilver = "silver"
	TierGold   = "gold"
)

// Badge IDs for the wrapped report.
const (
	BadgeStreak       = "streak"
	BadgeExplorer     = "explorer"
	BadgeGlobetrotter = "globetrotter"
	BadgeSocial       = "social"
	BadgePhotographer = "photographer"
)

// DayNames maps weekday indexes (0=Monday) to day names.
var DayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// MonthNames maps month indexes (0=January) to month names.
var MonthNames = []string{"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

// ShareLink is returned when a report is published.
type ShareLink struct {
	Token     string    `json:"token"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ReportProgress is a progress event emitted while a report is generated.
type ReportProgress struct {
	Stage   string `json:"stage"`
	Fetched int    `json:"fetched"`
	Code    string `json:"code,omitempty"` // APIError code on the error stage
	Message string `json:"message,omitempty"`
}

// Progress stages.
const (
	StageProfile   = "profile"
	StageFetching  = "fetching"
	StageAnalyzing = "analyzing"
	StageDone      = "done"
	StageError     = "error"
)
