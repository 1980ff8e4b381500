// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/swarmwrapped/internal/audit"
	"github.com/tomtom215/swarmwrapped/internal/auth"
	"github.com/tomtom215/swarmwrapped/internal/logging"
	"github.com/tomtom215/swarmwrapped/internal/models"
	"github.com/tomtom215/swarmwrapped/internal/report"
	"github.com/tomtom215/swarmwrapped/internal/validation"
	"github.com/tomtom215/swarmwrapped/internal/web"
)

// maxShareBodyBytes bounds the share request body.
const maxShareBodyBytes = 1 << 10

// Index renders the landing page.
// GET /
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	data := &web.PageData{Year: h.reports.DefaultRequest().Year}
	if session, err := h.sessions.Current(r); err == nil {
		data.Connected = true
		data.Username = session.Username
	}
	h.renderer.Render(w, r, http.StatusOK, web.PageIndex, data)
}

// LogoutPage asks the visitor to confirm a disconnect. Only the POST form it
// renders ends the session.
// GET /logout
func (h *Handler) LogoutPage(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Current(r)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	h.renderer.Render(w, r, http.StatusOK, web.PageLogout, &web.PageData{
		Title:     "Disconnect",
		Connected: true,
		Username:  session.Username,
	})
}

// GeneratePage renders the loading page that follows the progress stream.
// GET /generate?year=&exclude_sensitive=
func (h *Handler) GeneratePage(w http.ResponseWriter, r *http.Request) {
	req, verr := h.reportRequest(r)
	if verr != nil {
		h.renderer.RenderError(w, r, http.StatusBadRequest, "Invalid request", verr.Error())
		return
	}

	session := auth.SessionFromContext(r.Context())
	h.renderer.Render(w, r, http.StatusOK, web.PageGenerate, &web.PageData{
		Title:            "Generating",
		Connected:        true,
		Username:         session.Username,
		Year:             req.Year,
		ExcludeSensitive: req.ExcludeSensitive,
	})
}

// WrappedPage renders the session's report.
// GET /wrapped?year=&exclude_sensitive=
func (h *Handler) WrappedPage(w http.ResponseWriter, r *http.Request) {
	req, verr := h.reportRequest(r)
	if verr != nil {
		h.renderer.RenderError(w, r, http.StatusBadRequest, "Invalid request", verr.Error())
		return
	}

	session, token, err := h.accessToken(r)
	if err == nil {
		var result *report.Result
		result, err = h.reports.Generate(r.Context(), session.ID, token, req, nil)
		if err == nil {
			h.renderer.Render(w, r, http.StatusOK, web.PageReport, &web.PageData{
				Title:            fmt.Sprintf("Your %d Wrapped", req.Year),
				Connected:        true,
				Username:         session.Username,
				Report:           result.Report,
				Year:             req.Year,
				ExcludeSensitive: req.ExcludeSensitive,
				Years:            reportYears(time.Now().Year()),
			})
			return
		}
	}

	failure := classifyReportError(err)
	if failure.Reconnect() {
		h.dropSession(w, r, session)
	}
	logging.Ctx(r.Context()).Warn().Err(err).Str("code", failure.Code).Msg("Report page failed")
	h.renderer.RenderError(w, r, failure.Status, failure.Title, failure.Message)
}

// Report returns the session's report as JSON.
// @Summary Get the wrapped report
// @Description Generates the connected visitor's report for a year, or serves it from the session cache
// @Tags Reports
// @Produce json
// @Param year query int false "Report year (defaults to the configured year)"
// @Param exclude_sensitive query bool false "Drop check-ins at sensitive venue categories"
// @Success 200 {object} models.APIResponse{data=models.Report}
// @Failure 400 {object} models.APIResponse "VALIDATION_ERROR"
// @Failure 401 {object} models.APIResponse "UNAUTHORIZED or RECONNECT_REQUIRED"
// @Failure 404 {object} models.APIResponse "NO_CHECKINS"
// @Failure 429 {object} models.APIResponse "RATE_LIMITED"
// @Failure 502 {object} models.APIResponse "UPSTREAM_ERROR"
// @Failure 503 {object} models.APIResponse "SERVICE_UNAVAILABLE"
// @Security SessionCookie
// @Router /api/report [get]
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	result, ok := h.generate(w, r)
	if !ok {
		return
	}
	respondData(w, r, result.Report, models.Metadata{
		QueryTimeMS: result.Duration.Milliseconds(),
		Cached:      result.Cached,
	})
}

// generate runs the shared part of the JSON report endpoints and writes
// the error response on failure.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) (*report.Result, bool) {
	req, verr := h.reportRequest(r)
	if verr != nil {
		respondValidationError(w, r, verr)
		return nil, false
	}

	session, token, err := h.accessToken(r)
	if err == nil {
		var result *report.Result
		if result, err = h.reports.Generate(r.Context(), session.ID, token, req, nil); err == nil {
			return result, true
		}
	}

	h.respondReportError(w, r, session, err)
	return nil, false
}

// respondReportError writes the JSON error for a failed generation and
// revokes the session when the token is dead.
func (h *Handler) respondReportError(w http.ResponseWriter, r *http.Request, session *auth.Session, err error) {
	failure := classifyReportError(err)
	if failure.Reconnect() {
		h.dropSession(w, r, session)
	}
	respondError(w, r, failure.Status, failure.Code, failure.Message, err)
}

// shareRequest is the optional JSON body of POST /api/report/share.
type shareRequest struct {
	Year             *int  `json:"year"`
	ExcludeSensitive *bool `json:"exclude_sensitive"`
}

// Share publishes the session's report as a read-only link.
// @Summary Share the wrapped report
// @Description Publishes a snapshot of the report under a random token. Sharing the same report again returns the same link.
// @Tags Sharing
// @Accept json
// @Produce json
// @Param request body shareRequest false "Report to share (defaults to the configured year)"
// @Success 200 {object} models.APIResponse{data=models.ShareLink}
// @Failure 400 {object} models.APIResponse "VALIDATION_ERROR"
// @Failure 401 {object} models.APIResponse "UNAUTHORIZED or RECONNECT_REQUIRED"
// @Failure 404 {object} models.APIResponse "NO_CHECKINS"
// @Failure 502 {object} models.APIResponse "UPSTREAM_ERROR"
// @Security SessionCookie
// @Router /api/report/share [post]
func (h *Handler) Share(w http.ResponseWriter, r *http.Request) {
	req := h.reports.DefaultRequest()

	var body shareRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxShareBodyBytes)).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "Request body must be JSON.", nil)
		return
	}
	if body.Year != nil && *body.Year != 0 {
		req.Year = *body.Year
	}
	if body.ExcludeSensitive != nil {
		req.ExcludeSensitive = *body.ExcludeSensitive
	}
	if verr := validation.ValidateStruct(&validation.ReportQuery{Year: req.Year, ExcludeSensitive: req.ExcludeSensitive}); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	session, token, err := h.accessToken(r)
	if err == nil {
		var link *models.ShareLink
		if link, err = h.reports.Share(r.Context(), session.ID, token, req); err == nil {
			h.audit.LogReportShared(r.Context(), sessionActor(session), audit.SourceFromRequest(r), req.Year, link.ExpiresAt)
			respondData(w, r, link, models.Metadata{})
			return
		}
	}
	h.respondReportError(w, r, session, err)
}

// SharedPage renders a shared report for anonymous viewers.
// GET /shared/{token}
func (h *Handler) SharedPage(w http.ResponseWriter, r *http.Request) {
	shared, err := h.shared(r)
	if err != nil {
		failure := classifyReportError(report.ErrShareNotFound)
		h.renderer.RenderError(w, r, failure.Status, failure.Title, failure.Message)
		return
	}
	h.renderer.Render(w, r, http.StatusOK, web.PageReport, &web.PageData{
		Title:  fmt.Sprintf("%d Wrapped", shared.Year),
		Report: shared,
		Shared: true,
		Year:   shared.Year,
	})
}

// SharedReport returns a shared report as JSON.
// @Summary Get a shared report
// @Description Returns the read-only snapshot published under token. No session is needed.
// @Tags Sharing
// @Produce json
// @Param token path string true "Share token (24 hex characters)"
// @Success 200 {object} models.APIResponse{data=models.Report}
// @Failure 400 {object} models.APIResponse "VALIDATION_ERROR"
// @Failure 404 {object} models.APIResponse "NOT_FOUND"
// @Router /api/shared/{token} [get]
func (h *Handler) SharedReport(w http.ResponseWriter, r *http.Request) {
	if verr := validation.ValidateShareToken(chi.URLParam(r, "token")); verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	shared, err := h.shared(r)
	if err != nil {
		failure := classifyReportError(err)
		respondError(w, r, failure.Status, failure.Code, failure.Message, nil)
		return
	}
	respondData(w, r, shared, models.Metadata{Cached: true})
}

func (h *Handler) shared(r *http.Request) (*models.Report, error) {
	token := chi.URLParam(r, "token")
	if verr := validation.ValidateShareToken(token); verr != nil {
		return nil, report.ErrShareNotFound
	}
	return h.reports.Shared(token)
}
