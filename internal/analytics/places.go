// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package analytics

import (
	"math"
	"strings"

	"github.com/tomtom215/swarmwrapped/internal/models"
)

// earthRadiusMiles is used by the haversine distance.
const earthRadiusMiles = 3959.0

// computePlaces fills home city, furthest venue and international share.
func computePlaces(report *models.Report, checkins []models.CheckIn) {
	international := 0
	for _, c := range checkins {
		if c.Venue.IsInternational() {
			international++
		}
	}
	report.InternationalCheckins = international
	report.InternationalPercentage = percent(international, len(checkins))

	if len(report.TopCities) == 0 {
		return
	}
	report.HomeCity = report.TopCities[0].Name
	report.FurthestVenue = furthestVenue(checkins, cityName(report.HomeCity))
}

// furthestVenue finds the venue furthest from the centroid of the venues
// located in homeCity. It returns nil when the home city has no coordinates.
func furthestVenue(checkins []models.CheckIn, homeCity string) *models.FurthestVenue {
	seen := make(map[string]struct{})
	var venues []models.Venue
	for _, c := range checkins {
		key := c.Venue.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		venues = append(venues, c.Venue)
	}

	var sumLat, sumLng float64
	n := 0
	for _, v := range venues {
		if v.Location.City == homeCity && v.HasCoordinates() {
			sumLat += v.Location.Lat
			sumLng += v.Location.Lng
			n++
		}
	}
	if n == 0 {
		return nil
	}
	homeLat, homeLng := sumLat/float64(n), sumLng/float64(n)

	var best *models.Venue
	maxDist := 0.0
	for i := range venues {
		v := &venues[i]
		if !v.HasCoordinates() {
			continue
		}
		if d := Haversine(homeLat, homeLng, v.Location.Lat, v.Location.Lng); d > maxDist {
			maxDist = d
			best = v
		}
	}
	if best == nil {
		return nil
	}
	return &models.FurthestVenue{
		Name:          best.DisplayName(),
		City:          best.Location.City,
		Country:       best.Location.Country,
		DistanceMiles: int(math.Round(maxDist)),
	}
}

// Haversine returns the great-circle distance in miles between two points.
func Haversine(lat1, lng1, lat2, lng2 float64) float64 {
	rad := math.Pi / 180
	dLat := (lat2 - lat1) * rad
	dLng := (lng2 - lng1) * rad
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*rad)*math.Cos(lat2*rad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusMiles * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// MapPoints deduplicates venue coordinates rounded to 4 decimal places.
// Points keep first-seen order and list their distinct venue names.
// Venues without coordinates are skipped.
func MapPoints(checkins []models.CheckIn) []models.MapPoint {
	type pointKey struct{ lat, lng float64 }

	index := make(map[pointKey]int)
	names := make(map[pointKey]map[string]struct{})
	points := make([]models.MapPoint, 0)

	for _, c := range checkins {
		if !c.Venue.HasCoordinates() {
			continue
		}
		k := pointKey{round4(c.Venue.Location.Lat), round4(c.Venue.Location.Lng)}
		i, ok := index[k]
		if !ok {
			i = len(points)
			index[k] = i
			names[k] = make(map[string]struct{})
			points = append(points, models.MapPoint{Lat: k.lat, Lng: k.lng})
		}
		points[i].Checkins++
		name := c.Venue.DisplayName()
		if _, dup := names[k][name]; !dup {
			names[k][name] = struct{}{}
			points[i].Venues = append(points[i].Venues, name)
		}
	}
	return points
}

// cityName returns the part of a city key before the first comma.
func cityName(cityKey string) string {
	name, _, _ := strings.Cut(cityKey, ",")
	return strings.TrimSpace(name)
}
