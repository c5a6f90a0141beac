package handlers

import (
	"net/http"
	"strconv"

	"bielbarbosa.dev/internal/apperr"
	"bielbarbosa.dev/internal/models"
	"bielbarbosa.dev/internal/services"
)

const (
	defaultRepoLimit = 6
	maxRepoLimit     = 100
)

// RepoHandler handles GitHub repository endpoints
type RepoHandler struct {
	repoService *services.RepoService
}

// NewRepoHandler creates a new RepoHandler
func NewRepoHandler(rs *services.RepoService) *RepoHandler {
	return &RepoHandler{repoService: rs}
}

// ListRepos handles GET /api/repos?limit=n
func (h *RepoHandler) ListRepos(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, defaultRepoLimit)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string][]models.Repo{
		"repos": h.repoService.GetRecent(r.Context(), limit),
	})
}

// HomeHandler serves the landing page payload
type HomeHandler struct {
	projectService *services.ProjectService
	repoService    *services.RepoService
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(ps *services.ProjectService, rs *services.RepoService) *HomeHandler {
	return &HomeHandler{projectService: ps, repoService: rs}
}

type homeResponse struct {
	Featured []models.Project `json:"featured"`
	Repos    []models.Repo    `json:"repos"`
}

// GetHome handles GET /api/home - featured projects plus the latest repositories
func (h *HomeHandler) GetHome(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, homeResponse{
		Featured: h.projectService.Featured(),
		Repos:    h.repoService.GetRecent(r.Context(), defaultRepoLimit),
	})
}

// parseLimit reads the limit query parameter, clamped to [1, maxRepoLimit]
func parseLimit(r *http.Request, def int) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.NewError(apperr.InvalidArgument, "invalid limit", err)
	}
	return clamp(n, 1, maxRepoLimit), nil
}

// clamp restricts a value to a range
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
