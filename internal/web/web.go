// Swarm Wrapped - Check-in History Reports and Map Visualization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/swarmwrapped

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/tomtom215/swarmwrapped/internal/logging"
	"github.com/tomtom215/swarmwrapped/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page names accepted by Render.
const (
	PageIndex    = "index"
	PageGenerate = "generate"
	PageReport   = "report"
	PageError    = "error"
	PageLogout   = "logout"
)

var pages = []string{PageIndex, PageGenerate, PageReport, PageError, PageLogout}

// PageData is the data passed to every page template.
type PageData struct {
	Title     string
	Connected bool
	Username  string

	// Report pages
	Report           *models.Report
	Shared           bool
	Year             int
	ExcludeSensitive bool
	Years            []int

	// Error page
	Error *ErrorData
}

// ErrorData describes a user-facing error. Every error page offers at
// least one way forward.
type ErrorData struct {
	Title        string
	Message      string
	RetryURL     string
	ReconnectURL string
}

// Renderer renders the embedded HTML templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the layout together with each page template.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	funcs := templateFuncs()

	for _, name := range pages {
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

// MustNewRenderer is NewRenderer for use at startup and in tests.
func MustNewRenderer() *Renderer {
	r, err := NewRenderer()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes a page into a buffer first so template errors produce a
// clean 500 instead of a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, page string, data *PageData) {
	tmpl, ok := r.pages[page]
	if !ok {
		logging.Ctx(req.Context()).Error().Str("page", page).Msg("Unknown page template")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		logging.Ctx(req.Context()).Error().Err(err).Str("page", page).Msg("Failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logging.Ctx(req.Context()).Debug().Err(err).Msg("Failed to write page")
	}
}

// RenderError renders the error page with a retry link back to the
// requested page and a reconnect link. Its signature matches
// auth.ErrorRenderer.
func (r *Renderer) RenderError(w http.ResponseWriter, req *http.Request, status int, title, message string) {
	retry := "/"
	if req.Method == http.MethodGet && req.URL.Path != "/callback" {
		retry = req.URL.RequestURI()
	}
	r.Render(w, req, status, PageError, &PageData{
		Title: title,
		Error: &ErrorData{
			Title:        title,
			Message:      message,
			RetryURL:     retry,
			ReconnectURL: "/login",
		},
	})
}

// Static serves the embedded CSS and JavaScript under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // the embed directive guarantees the directory
	}
	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		fileServer.ServeHTTP(w, r)
	})
}
