// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package api

import (
	"net/http"

	"github.com/tomtom215/swarmwrapped/internal/models"
)

// GeoJSON type definitions
type GeoJSONGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type GeoJSONProperties struct {
	Venues   []string `json:"venues"`
	Checkins int      `json:"checkins"`
}

type GeoJSONFeature struct {
	Type       string            `json:"type"`
	Geometry   GeoJSONGeometry   `json:"geometry"`
	Properties GeoJSONProperties `json:"properties"`
}

type GeoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []GeoJSONFeature `json:"features"`
}

// mapFeatureCollection converts report map points to GeoJSON. Coordinates
// are [longitude, latitude] per RFC 7946.
func mapFeatureCollection(points []models.MapPoint) *GeoJSONFeatureCollection {
	features := make([]GeoJSONFeature, 0, len(points))
	for _, p := range points {
		features = append(features, GeoJSONFeature{
			Type: "Feature",
			Geometry: GeoJSONGeometry{
				Type:        "Point",
				Coordinates: []float64{p.Lng, p.Lat},
			},
			Properties: GeoJSONProperties{
				Venues:   p.Venues,
				Checkins: p.Checkins,
			},
		})
	}
	return &GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}

// ReportMap returns the report's map points as a GeoJSON FeatureCollection.
// @Summary Get report map points
// @Description Returns one GeoJSON point per rounded coordinate with its venues and check-in count
// @Tags Reports
// @Produce application/geo+json
// @Param year query int false "Report year (defaults to the configured year)"
// @Param exclude_sensitive query bool false "Drop check-ins at sensitive venue categories"
// @Success 200 {object} GeoJSONFeatureCollection
// @Failure 401 {object} models.APIResponse "UNAUTHORIZED or RECONNECT_REQUIRED"
// @Failure 404 {object} models.APIResponse "NO_CHECKINS"
// @Security SessionCookie
// @Router /api/report/map [get]
func (h *Handler) ReportMap(w http.ResponseWriter, r *http.Request) {
	result, ok := h.generate(w, r)
	if !ok {
		return
	}
	respondBytes(w, r, http.StatusOK, "application/geo+json", mapFeatureCollection(result.Report.MapPoints))
}
