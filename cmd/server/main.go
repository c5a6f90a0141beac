package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"bielbarbosa.dev/internal/clients/github"
	"bielbarbosa.dev/internal/clients/vercel"
	"bielbarbosa.dev/internal/config"
	"bielbarbosa.dev/internal/handlers"
	"bielbarbosa.dev/internal/logging"
	"bielbarbosa.dev/internal/models"
	"bielbarbosa.dev/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logging.NewLogger(os.Stderr, cfg.Env, cfg.SlogLevel()))

	featured := services.DefaultFeatured()
	if cfg.FeaturedFile != "" {
		var list *models.ProjectList
		list, err = config.LoadFeatured(cfg.FeaturedFile)
		if err != nil {
			slog.Error("failed to load featured projects", "path", cfg.FeaturedFile, "error", err)
			os.Exit(1)
		}
		featured = list.Projects
	}
	if cfg.VercelToken == "" {
		slog.Warn("PORTFOLIO_VERCEL_TOKEN is empty, the catalog will fall back to featured projects")
	}

	vercelClient := vercel.NewClient(vercel.Config{
		Token:   cfg.VercelToken,
		BaseURL: cfg.VercelAPIURL,
		TeamID:  cfg.VercelTeamID,
	}, nil)
	githubClient := github.NewClient(cfg.GitHubAPIURL, cfg.GitHubUser, nil)

	projectService := services.NewProjectService(vercelClient, featured, services.NormalizeOptions{
		GitHubAccount: cfg.GitHubUser,
	})
	repoService := services.NewRepoService(githubClient)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           h2c.NewHandler(handlers.SetupRoutes(cfg, projectService, repoService), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	go func() {
		slog.Info("starting server", "addr", srv.Addr, "featured", len(featured))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
