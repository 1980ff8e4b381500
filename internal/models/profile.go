// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package models

import "strings"

// Profile is the authenticated Foursquare user.
type Profile struct {
	ID               string `json:"id"`
	FirstName        string `json:"first_name,omitempty"`
	LastName         string `json:"last_name,omitempty"`
	Handle           string `json:"handle,omitempty"`
	LifetimeCheckins int    `json:"lifetime_checkins"`
}

// Username returns "First Last" when a name is present, the handle otherwise,
// and "Swarm User" when neither is set.
func (p Profile) Username() string {
	if name := strings.TrimSpace(p.FirstName + " " + p.LastName); name != "" {
		return name
	}
	if p.Handle != "" {
		return p.Handle
	}
	return "Swarm User"
}
