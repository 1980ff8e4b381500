// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tomtom215/swarmwrapped/internal/auth"
	"github.com/tomtom215/swarmwrapped/internal/middleware"
	"github.com/tomtom215/swarmwrapped/internal/models"
	"github.com/tomtom215/swarmwrapped/internal/web"
)

// Router wires the handlers, the OAuth flow and the middleware stack.
type Router struct {
	handler       *Handler
	flows         *auth.FlowHandlers
	sessions      *auth.SessionManager
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. chiMw may be nil for defaults.
func NewRouter(handler *Handler, flows *auth.FlowHandlers, sessions *auth.SessionManager, chiMw *ChiMiddleware) *Router {
	if chiMw == nil {
		chiMw = NewChiMiddleware(nil)
	}
	return &Router{
		handler:       handler,
		flows:         flows,
		sessions:      sessions,
		chiMiddleware: chiMw,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()
	h := router.handler

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.AccessLog(middleware.DefaultSlowRequestThreshold))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.SecurityHeaders)
	r.Use(router.chiMiddleware.CORS())
	r.Use(middleware.Compression)

	// ========================
	// Operational Endpoints
	// ========================
	r.With(router.chiMiddleware.RateLimitHealth()).Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Handle("/static/*", web.Static())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// ========================
	// OAuth Flow
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitAuth())
		r.Get("/login", router.flows.Login)
		r.Get("/callback", router.flows.Callback)
		r.Get("/logout", h.LogoutPage)
		r.Post("/logout", router.flows.Disconnect)
	})

	// ========================
	// Pages
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Get("/", h.Index)
		r.Get("/shared/{token}", h.SharedPage)

		r.Group(func(r chi.Router) {
			r.Use(router.sessions.RequireSession(http.HandlerFunc(redirectToLogin)))
			r.Get("/generate", h.GeneratePage)
			r.Get("/wrapped", h.WrappedPage)
		})
	})

	// ========================
	// JSON API
	// ========================
	r.Route("/api", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Get("/session", router.flows.Status)
		r.Get("/shared/{token}", h.SharedReport)

		r.Group(func(r chi.Router) {
			r.Use(router.sessions.RequireSession(http.HandlerFunc(unauthorizedJSON)))
			r.Get("/report", h.Report)
			r.Get("/report/map", h.ReportMap)
			r.With(router.chiMiddleware.RateLimitWebSocket()).Get("/report/progress", h.ReportProgress)
			r.With(router.chiMiddleware.RateLimitShare()).Post("/report/share", h.Share)
		})
	})

	r.NotFound(router.notFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, r, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Method not allowed.", nil)
	})

	return r
}

// notFound answers JSON under /api and an HTML page elsewhere.
func (router *Router) notFound(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") {
		respondError(w, r, http.StatusNotFound, models.ErrCodeNotFound, "Not found.", nil)
		return
	}
	router.handler.renderer.RenderError(w, r, http.StatusNotFound, "Page not found", "There is nothing at this address.")
}
