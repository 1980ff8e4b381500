// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/swarmwrapped/internal/models"
)

// Health reports liveness and the Foursquare circuit breaker state. An open
// breaker marks the service degraded but still answers 200; the process
// itself is alive.
// @Summary Health check
// @Description Liveness, version and the Foursquare circuit breaker state
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	breaker := "unknown"
	if h.breaker != nil {
		breaker = h.breaker.BreakerState()
	}

	status := "healthy"
	if breaker == "open" {
		status = "degraded"
	}

	respondData(w, r, models.HealthStatus{
		Status:         status,
		Version:        h.version,
		Uptime:         time.Since(h.startTime).Seconds(),
		CircuitBreaker: breaker,
		Timestamp:      time.Now(),
	}, models.Metadata{})
}
