package handlers

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"dconn.dev/portfolio/internal/config"
	"dconn.dev/portfolio/internal/models"
	"dconn.dev/portfolio/internal/views"
)

const sectionPath = views.SectionPath

// PageHandler serves the portfolio page and section switches
type PageHandler struct {
	sessions *SessionResolver
	site     config.SiteConfig
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(sessions *SessionResolver, site config.SiteConfig) *PageHandler {
	return &PageHandler{sessions: sessions, site: site}
}

// Index handles GET / - the full page for the visitor's current section
// The query string is ignored, so the inert contact form reloads as is
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	state := h.sessions.resolve(w, r)

	respondHTML(w, http.StatusOK, views.Page(views.PageData{
		Title:          h.site.Title,
		Active:         state.ActiveSection(),
		Projects:       state.Projects(),
		StylesheetHref: StylesheetPath,
		TailwindURL:    h.site.TailwindURL,
		HTMXURL:        h.site.HTMXURL,
	}))
}

// SetSection handles POST /section - stores the posted section as is
// htmx requests get the new stage and nav back, or nothing to swap when
// the section did not change. Plain form posts are redirected to the page
func (h *PageHandler) SetSection(w http.ResponseWriter, r *http.Request) {
	state := h.sessions.resolve(w, r)

	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid form body")
		return
	}
	changed := state.SetActiveSection(models.Section(r.PostForm.Get(views.SectionField)))

	if r.Header.Get("HX-Request") == "true" {
		if !changed {
			w.Header().Set("HX-Reswap", "none")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		respondHTML(w, http.StatusOK, views.SectionSwap(state.ActiveSection(), state.Projects()))
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Fragment handles GET /fragments/app - navigation and content only
func (h *PageHandler) Fragment(w http.ResponseWriter, r *http.Request) {
	state := h.sessions.resolve(w, r)
	respondHTML(w, http.StatusOK, views.App(state.ActiveSection(), state.Projects(), false))
}

// Stylesheet handles GET /static/motion.css
func (h *PageHandler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := io.WriteString(w, views.Stylesheet()); err != nil {
		zap.L().Warn("Error writing stylesheet", zap.Error(err))
	}
}
