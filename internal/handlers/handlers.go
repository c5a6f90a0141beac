package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"bielbarbosa.dev/internal/apperr"
	"bielbarbosa.dev/internal/config"
	"bielbarbosa.dev/internal/logging"
	"bielbarbosa.dev/internal/middleware"
	"bielbarbosa.dev/internal/services"
)

// pageRoutes are the front-end routes answered with the single-page app shell
var pageRoutes = []string{"/", "/projetos", "/projetos/{id}", "/contato"}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, projectService *services.ProjectService, repoService *services.RepoService) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	repoHandler := NewRepoHandler(repoService)
	homeHandler := NewHomeHandler(projectService, repoService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)
		r.Get("/repos", repoHandler.ListRepos)
		r.Get("/home", homeHandler.GetHome)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
		})

		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			respondError(w, r, apperr.NewError(apperr.NotFound, "not found", nil))
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Serve index.html for every page of the site
	index := filepath.Join(cfg.StaticDir, "index.html")
	for _, route := range pageRoutes {
		r.Get(route, func(w http.ResponseWriter, r *http.Request) {
			http.ServeFile(w, r, index)
		})
	}

	return r
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.ErrorContext(r.Context(), "error encoding JSON", "error", err)
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// respondError writes an error JSON response and records the cause for the request log
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	aerr := apperr.From(err)
	logging.AddError(r.Context(), aerr)
	respondJSON(w, r, aerr.Code.HTTPCode(), errorBody{Code: aerr.Code.String(), Message: aerr.Msg})
}
