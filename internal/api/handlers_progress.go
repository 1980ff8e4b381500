// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package api

import (
	"net/http"

	"github.com/tomtom215/swarmwrapped/internal/logging"
	"github.com/tomtom215/swarmwrapped/internal/models"
	ws "github.com/tomtom215/swarmwrapped/internal/websocket"
)

// ReportProgress generates the session's report while streaming progress
// over a websocket. The stream ends with a done event, or with an error
// event carrying the same code the JSON endpoint would return. Closing the
// socket stops the wait; the generation itself finishes for the cache.
// GET /api/report/progress?year=&exclude_sensitive=
func (h *Handler) ReportProgress(w http.ResponseWriter, r *http.Request) {
	req, verr := h.reportRequest(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	session, token, tokenErr := h.accessToken(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written the handshake error
		logging.Ctx(r.Context()).Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	stream := ws.NewStream(conn)
	ctx := stream.Start(r.Context())
	defer stream.Close()

	err = tokenErr
	if err == nil {
		_, err = h.reports.Generate(ctx, session.ID, token, req, func(p models.ReportProgress) {
			// Errors are reported below with a client-facing message
			if p.Stage != models.StageError {
				stream.Send(p)
			}
		})
	}
	if err == nil {
		return
	}

	failure := classifyReportError(err)
	if failure.Reconnect() {
		h.dropSession(w, r, session)
	}
	logging.Ctx(r.Context()).Warn().Err(err).Str("code", failure.Code).Msg("Report generation failed")
	stream.Send(models.ReportProgress{
		Stage:   models.StageError,
		Code:    failure.Code,
		Message: failure.Message,
	})
}
