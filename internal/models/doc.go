// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
Package models defines data structures for the Swarm Wrapped application.

This package contains the check-in records decoded from the Foursquare API,
the computed yearly report, and the API response envelope shared by all JSON
endpoints. It is the single source of truth for data structure definitions.

Key Components:

  - CheckIn: One visit to a venue, as returned by /v2/users/self/checkins
  - Venue, Location, Category: Venue details carried by each check-in
  - Friend: A member of the crew tagged on a check-in
  - Profile: The authenticated user's display name and lifetime count
  - Report: The complete yearly wrapped report
  - APIResponse: Standardized API response wrapper

Derived Accessors:

Check-ins carry their creation time in UTC seconds plus a per-check-in
timezone offset in minutes. LocalTime applies that offset and returns a
wall-clock time expressed in UTC, so hour, weekday and date arithmetic
reflect where the user was standing at the moment of the check-in.

	local := c.LocalTime()
	date := c.LocalDate() // "2025-03-14"

Venues expose grouping keys used throughout the analytics package:

	v.Key()             // venue ID, or the name when no ID is present
	v.CityKey()         // "Austin, Texas", "Paris, France" or "Unknown"
	v.PrimaryCategory() // primary category name, or "Other"

Thread Safety:

All models are plain values with no internal synchronization. Check-ins
are treated as immutable once decoded.
*/
package models
