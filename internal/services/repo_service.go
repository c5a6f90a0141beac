package services

import (
	"context"
	"log/slog"
	"slices"

	"bielbarbosa.dev/internal/models"
)

// RepoFetcher is the GitHub repository source.
type RepoFetcher interface {
	ListRepos(ctx context.Context) ([]models.Repo, error)
}

// RepoService serves the public repository list
type RepoService struct {
	fetcher RepoFetcher
}

// NewRepoService creates a new RepoService
func NewRepoService(fetcher RepoFetcher) *RepoService {
	return &RepoService{fetcher: fetcher}
}

// GetRecent returns up to limit repositories, most recently updated first.
// A failed fetch is logged and yields an empty list. limit <= 0 means all.
func (s *RepoService) GetRecent(ctx context.Context, limit int) []models.Repo {
	repos, err := s.fetcher.ListRepos(ctx)
	if err != nil {
		slog.WarnContext(ctx, "github repository fetch failed", "error", err)
		return []models.Repo{}
	}

	repos = slices.Clone(repos)
	slices.SortStableFunc(repos, func(a, b models.Repo) int {
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	if limit > 0 && len(repos) > limit {
		repos = repos[:limit]
	}
	if repos == nil {
		repos = []models.Repo{}
	}
	return repos
}
