package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"bielbarbosa.dev/internal/apperr"
	"bielbarbosa.dev/internal/models"
	"bielbarbosa.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

type projectListResponse struct {
	models.ProjectList
	Status     services.CatalogStatus `json:"status"`
	SnapshotID string                 `json:"snapshot_id"`
}

// ListProjects handles GET /api/projects?source=vercel,featured
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	sources, err := parseSources(r.URL.Query().Get("source"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	catalog := h.projectService.Catalog(r.Context())
	respondJSON(w, r, http.StatusOK, projectListResponse{
		ProjectList: models.ProjectList{Projects: services.FilterBySource(catalog.Projects, sources...)},
		Status:      catalog.Status,
		SnapshotID:  catalog.SnapshotID,
	})
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, ok := h.projectService.GetByID(r.Context(), id)
	if !ok {
		respondError(w, r, apperr.NewError(apperr.NotFound, "project not found", nil))
		return
	}

	respondJSON(w, r, http.StatusOK, project)
}

func parseSources(raw string) ([]models.Source, error) {
	if raw == "" {
		return nil, nil
	}
	var sources []models.Source
	for _, part := range strings.Split(raw, ",") {
		s := models.Source(strings.TrimSpace(part))
		switch s {
		case models.SourceGitHub, models.SourceVercel, models.SourceFeatured:
			sources = append(sources, s)
		default:
			return nil, apperr.NewError(apperr.InvalidArgument, fmt.Sprintf("unknown source %q", part), nil)
		}
	}
	return sources, nil
}
