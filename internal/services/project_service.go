package services

import (
	"context"
	"log/slog"
	"slices"

	"github.com/oklog/ulid/v2"

	"bielbarbosa.dev/internal/logging"
	"bielbarbosa.dev/internal/models"
)

// ProjectFetcher is the remote project source.
type ProjectFetcher interface {
	ListProjects(ctx context.Context) ([]models.RemoteProject, error)
}

// CatalogStatus tells a healthy catalog apart from a degraded one.
type CatalogStatus string

const (
	// CatalogComplete means the remote source answered.
	CatalogComplete CatalogStatus = "complete"
	// CatalogFallback means the remote fetch failed and only the featured
	// projects are present.
	CatalogFallback CatalogStatus = "fallback"
)

// Catalog is the result of one catalog build.
type Catalog struct {
	SnapshotID string
	Status     CatalogStatus
	Projects   []models.Project
	// Err is the remote failure behind a fallback catalog.
	Err error
}

// ProjectService handles project-related operations
type ProjectService struct {
	fetcher  ProjectFetcher
	featured []models.Project
	opts     NormalizeOptions
}

// NewProjectService creates a new ProjectService
func NewProjectService(fetcher ProjectFetcher, featured []models.Project, opts NormalizeOptions) *ProjectService {
	return &ProjectService{
		fetcher:  fetcher,
		featured: featured,
		opts:     opts,
	}
}

// Catalog fetches the remote projects once, normalizes them and appends the
// featured list. A failed fetch degrades to the featured list alone; the
// failure is reported through Status and Err, never returned.
func (s *ProjectService) Catalog(ctx context.Context) Catalog {
	snapshotID := ulid.Make().String()
	logging.AddAttribute(ctx, "snapshot_id", snapshotID)

	records, err := s.fetcher.ListProjects(ctx)
	if err != nil {
		slog.WarnContext(ctx, "remote project fetch failed, serving featured projects only",
			"snapshot_id", snapshotID, "error", err)
		return Catalog{
			SnapshotID: snapshotID,
			Status:     CatalogFallback,
			Projects:   s.featuredCopy(),
			Err:        err,
		}
	}

	projects := make([]models.Project, 0, len(records)+len(s.featured))
	seen := make(map[string]struct{}, len(records)+len(s.featured))
	for _, f := range s.featured {
		seen[f.ID] = struct{}{}
	}
	for _, rec := range records {
		if _, dup := seen[rec.ID]; dup {
			slog.WarnContext(ctx, "dropping remote project with duplicate id",
				"snapshot_id", snapshotID, "project_id", rec.ID, "name", rec.Name)
			continue
		}
		seen[rec.ID] = struct{}{}
		projects = append(projects, NormalizeRemoteProject(rec, s.opts))
	}
	projects = append(projects, s.featuredCopy()...)

	return Catalog{
		SnapshotID: snapshotID,
		Status:     CatalogComplete,
		Projects:   projects,
	}
}

// GetAll returns all projects: remote-derived first, featured appended
func (s *ProjectService) GetAll(ctx context.Context) []models.Project {
	return s.Catalog(ctx).Projects
}

// GetByID returns a specific project by ID. It rebuilds the catalog on every
// call; a missing id is reported as false, not as an error.
func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, bool) {
	projects := s.GetAll(ctx)
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], true
		}
	}
	return nil, false
}

// Featured returns the featured projects without touching the remote source
func (s *ProjectService) Featured() []models.Project {
	return s.featuredCopy()
}

func (s *ProjectService) featuredCopy() []models.Project {
	out := make([]models.Project, len(s.featured))
	for i, p := range s.featured {
		p.Technologies = slices.Clone(p.Technologies)
		out[i] = p
	}
	return out
}

// FilterBySource keeps the projects whose source is listed. With no sources
// the input is returned unchanged.
func FilterBySource(projects []models.Project, sources ...models.Source) []models.Project {
	if len(sources) == 0 {
		return projects
	}
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if slices.Contains(sources, p.Source) {
			out = append(out, p)
		}
	}
	return out
}
