// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

/*
Package analytics computes the yearly wrapped report from a list of check-ins.

Analyze is a pure function: it copies and sorts its input chronologically,
optionally drops sensitive venues, and runs a set of independent aggregation
passes over the sequence. No I/O happens here.

Passes:

  - Counts: totals and distinct venues, cities, countries, categories
  - Activity: days active, span, longest streak, longest gap, busiest date
  - Rankings: top venues, categories, cities, countries and crew
  - Temporal: hour, weekday and month buckets on local time, time of day
  - Social and engagement: crew share, solo share, shouts, photos
  - Places: home city, furthest venue, one-time venues, map points
  - Insights: personality, badges, year summary and shareable text

Rankings are ordered by count descending with ties broken by the order in
which each key was first seen in the chronological sequence, so equal input
always yields equal output.

Local Time:

All day, hour and weekday arithmetic uses each check-in's own timezone
offset (models.CheckIn.LocalTime), so a check-in at 11pm in Tokyo and one
at 11pm in New York both count toward the 11pm bucket.
*/
package analytics
