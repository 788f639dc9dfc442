package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
	g "maragu.dev/gomponents"

	"dconn.dev/portfolio/internal/config"
	"dconn.dev/portfolio/internal/middleware"
	"dconn.dev/portfolio/internal/services"
)

// StylesheetPath serves the compiled motion CSS
const StylesheetPath = "/static/motion.css"

// Deps are the services the routes are built on
type Deps struct {
	Config   *config.Config
	Logger   *zap.Logger
	Projects *services.ProjectService
	Views    *services.ViewService
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(d Deps) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Logger(d.Logger))

	// Initialize handlers
	sessions := NewSessionResolver(d.Views, d.Config.Session)
	pageHandler := NewPageHandler(sessions, d.Config.Site)
	projectHandler := NewProjectHandler(d.Projects)
	stateHandler := NewStateHandler(sessions)

	// Pages
	r.Get("/", pageHandler.Index)
	r.Post(sectionPath, pageHandler.SetSection)
	r.Get("/fragments/app", pageHandler.Fragment)
	r.Get(StylesheetPath, pageHandler.Stylesheet)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   d.Config.CORS.AllowedOrigins,
			AllowedMethods:   []string{"GET", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           300,
		}))

		// View state
		r.Get("/state", stateHandler.GetState)
		r.Put("/state", stateHandler.PutState)

		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Images referenced by the seed projects
		r.Get("/placeholder/{width}/{height}", Placeholder)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("Error encoding JSON", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondHTML renders a component tree
func respondHTML(w http.ResponseWriter, status int, node g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if err := node.Render(w); err != nil {
		zap.L().Warn("Error rendering HTML", zap.Error(err))
	}
}
