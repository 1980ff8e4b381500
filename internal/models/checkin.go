// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package models

import (
	"strings"
	"time"
)

// UnitedStates is the country name Foursquare reports for US venues.
const UnitedStates = "United States"

// UnknownCity is the city key used when a venue has no city.
const UnknownCity = "Unknown"

// OtherCategory is the category name used when a venue has no categories.
const OtherCategory = "Other"

// CheckIn represents a single Swarm check-in as returned by the Foursquare API.
//
// CreatedAt is a unix timestamp in UTC seconds. TimeZoneOffset is the offset
// of the venue's local time from UTC in minutes, which can be negative.
type CheckIn struct {
	ID             string   `json:"id"`
	CreatedAt      int64    `json:"createdAt"`
	TimeZoneOffset int      `json:"timeZoneOffset"`
	Shout          string   `json:"shout,omitempty"`
	With           []Friend `json:"with,omitempty"`
	Photos         Photos   `json:"photos"`
	Venue          Venue    `json:"venue"`
}

// Venue describes the place a check-in was made at.
type Venue struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Categories []Category `json:"categories,omitempty"`
	Location   Location   `json:"location"`
}

// Location holds the geographic fields of a venue. Lat and Lng are zero when
// the venue has no coordinates.
type Location struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	Country     string  `json:"country,omitempty"`
	CountryCode string  `json:"cc,omitempty"`
}

// Category is a Foursquare venue category.
type Category struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Primary bool   `json:"primary,omitempty"`
}

// Friend is a user tagged on a check-in.
type Friend struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
}

// Photos is the photo envelope attached to a check-in.
type Photos struct {
	Count int     `json:"count"`
	Items []Photo `json:"items,omitempty"`
}

// Photo is a single photo reference. Only the ID is retained.
type Photo struct {
	ID string `json:"id"`
}

// LocalTime returns the wall-clock time at the venue when the check-in was
// made. The returned value is in UTC so that its fields read as local time.
func (c CheckIn) LocalTime() time.Time {
	return time.Unix(c.CreatedAt, 0).UTC().Add(time.Duration(c.TimeZoneOffset) * time.Minute)
}

// LocalDate returns the local calendar date of the check-in as YYYY-MM-DD.
func (c CheckIn) LocalDate() string {
	return c.LocalTime().Format(time.DateOnly)
}

// HasCrew reports whether anyone was tagged on the check-in.
func (c CheckIn) HasCrew() bool {
	return len(c.With) > 0
}

// PhotoCount returns the number of photos attached to the check-in.
func (c CheckIn) PhotoCount() int {
	return len(c.Photos.Items)
}

// Key returns the grouping key for the venue: its ID, or its name when the
// ID is missing.
func (v Venue) Key() string {
	if v.ID != "" {
		return v.ID
	}
	return v.Name
}

// DisplayName returns the venue name, or "Unknown Venue" when empty.
func (v Venue) DisplayName() string {
	if v.Name == "" {
		return "Unknown Venue"
	}
	return v.Name
}

// PrimaryCategory returns the name of the category flagged primary, the first
// category when none is flagged, or OtherCategory when there are none.
func (v Venue) PrimaryCategory() string {
	for _, c := range v.Categories {
		if c.Primary && c.Name != "" {
			return c.Name
		}
	}
	if len(v.Categories) > 0 && v.Categories[0].Name != "" {
		return v.Categories[0].Name
	}
	return OtherCategory
}

// CityKey returns the key used to group venues by city:
//
//	"City, State"    when a state is present
//	"City, Country"  outside the United States
//	"City"           otherwise
//
// A venue without a city returns UnknownCity.
func (v Venue) CityKey() string {
	city := strings.TrimSpace(v.Location.City)
	if city == "" {
		return UnknownCity
	}
	if v.Location.State != "" {
		return city + ", " + v.Location.State
	}
	if v.Location.Country != "" && v.Location.Country != UnitedStates {
		return city + ", " + v.Location.Country
	}
	return city
}

// CountryName returns the venue's country, or "Unknown" when missing.
func (v Venue) CountryName() string {
	if v.Location.Country == "" {
		return "Unknown"
	}
	return v.Location.Country
}

// HasCoordinates reports whether the venue carries a usable position.
func (v Venue) HasCoordinates() bool {
	return v.Location.Lat != 0 && v.Location.Lng != 0
}

// IsInternational reports whether the venue is outside the United States.
func (v Venue) IsInternational() bool {
	return v.Location.Country != UnitedStates
}

// DisplayName returns "First Last" with surrounding whitespace removed.
func (f Friend) DisplayName() string {
	return strings.TrimSpace(f.FirstName + " " + f.LastName)
}

// Key returns the friend's ID, falling back to the display name.
func (f Friend) Key() string {
	if f.ID != "" {
		return f.ID
	}
	return f.DisplayName()
}
