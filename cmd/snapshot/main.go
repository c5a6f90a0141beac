package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"github.com/sourcegraph/conc"

	"bielbarbosa.dev/internal/clients/github"
	"bielbarbosa.dev/internal/clients/vercel"
	"bielbarbosa.dev/internal/config"
	"bielbarbosa.dev/internal/logging"
	"bielbarbosa.dev/internal/models"
	"bielbarbosa.dev/internal/services"
)

var (
	app       = kingpin.New("snapshot", "Write the portfolio catalog to JSON files")
	outputDir = app.Arg("output-dir", "Directory the JSON files are written to").Required().String()
	withRepos = app.Flag("repos", "Also write the GitHub repository list").Bool()
	repoLimit = app.Flag("limit", "Maximum number of repositories to write (0 = all)").Default("0").Int()
	strict    = app.Flag("strict", "Exit with an error when the catalog had to fall back to featured projects").Bool()
)

type projectSnapshot struct {
	SnapshotID string                 `json:"snapshot_id"`
	Status     services.CatalogStatus `json:"status"`
	Error      string                 `json:"error,omitempty"`
	models.ProjectList
}

type repoSnapshot struct {
	Repos []models.Repo `json:"repos"`
}

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.NewLogger(os.Stderr, cfg.Env, cfg.SlogLevel()))

	featured := services.DefaultFeatured()
	if cfg.FeaturedFile != "" {
		list, err := config.LoadFeatured(cfg.FeaturedFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load featured projects: %v\n", err)
			os.Exit(1)
		}
		featured = list.Projects
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create output directory: %v\n", err)
		os.Exit(1)
	}

	projectService := services.NewProjectService(
		vercel.NewClient(vercel.Config{Token: cfg.VercelToken, BaseURL: cfg.VercelAPIURL, TeamID: cfg.VercelTeamID}, nil),
		featured,
		services.NormalizeOptions{GitHubAccount: cfg.GitHubUser},
	)
	repoService := services.NewRepoService(github.NewClient(cfg.GitHubAPIURL, cfg.GitHubUser, nil))

	ctx := context.Background()
	var (
		catalog services.Catalog
		repos   []models.Repo
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		fmt.Println("Fetching project catalog...")
		catalog = projectService.Catalog(ctx)
	})
	if *withRepos {
		wg.Go(func() {
			fmt.Printf("Fetching repositories of %s...\n", cfg.GitHubUser)
			repos = repoService.GetRecent(ctx, *repoLimit)
		})
	}
	wg.Wait()

	snap := projectSnapshot{
		SnapshotID:  catalog.SnapshotID,
		Status:      catalog.Status,
		ProjectList: models.ProjectList{Projects: catalog.Projects},
	}
	if catalog.Err != nil {
		snap.Error = catalog.Err.Error()
	}
	if err := writeJSON(filepath.Join(*outputDir, "projects.json"), snap); err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("  Created projects.json (%d projects, %s)\n", len(catalog.Projects), catalog.Status)

	if *withRepos {
		if err := writeJSON(filepath.Join(*outputDir, "repos.json"), repoSnapshot{Repos: repos}); err != nil {
			fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  Created repos.json (%d repos)\n", len(repos))
	}

	if *strict && catalog.Status == services.CatalogFallback {
		fmt.Fprintf(os.Stderr, "Catalog fell back to featured projects: %v\n", catalog.Err)
		os.Exit(1)
	}
	fmt.Println("Done!")
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
