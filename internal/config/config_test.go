package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bielbarbosa.dev/internal/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":8080", cfg.ServerAddr())
	assert.Equal(t, "static", cfg.StaticDir)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "https://api.vercel.com", cfg.VercelAPIURL)
	assert.Empty(t, cfg.VercelToken)
	assert.Equal(t, "Biel-barbosa", cfg.GitHubUser)
	assert.Equal(t, "https://api.github.com", cfg.GitHubAPIURL)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORTFOLIO_HTTP_HOST", "127.0.0.1")
	t.Setenv("PORTFOLIO_HTTP_PORT", "9000")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "debug")
	t.Setenv("PORTFOLIO_VERCEL_TOKEN", "secret")
	t.Setenv("PORTFOLIO_VERCEL_TEAM_ID", "team_1")
	t.Setenv("PORTFOLIO_GITHUB_USER", "someone")
	t.Setenv("PORTFOLIO_ALLOWED_ORIGINS", "https://a.dev,https://b.dev")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddr())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "secret", cfg.VercelToken)
	assert.Equal(t, "team_1", cfg.VercelTeamID)
	assert.Equal(t, "someone", cfg.GitHubUser)
	assert.Equal(t, []string{"https://a.dev", "https://b.dev"}, cfg.AllowedOrigins)
}

func TestSlogLevelFallback(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, (*Config)(nil).SlogLevel())
	assert.Equal(t, slog.LevelInfo, (&Config{BaseEnv: BaseEnv{LogLevel: "loud"}}).SlogLevel())
	assert.Equal(t, slog.LevelWarn, (&Config{BaseEnv: BaseEnv{LogLevel: "warn"}}).SlogLevel())
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "featured.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFeatured(t *testing.T) {
	path := writeFile(t, `
projects:
  - id: a
    name: Shop
    description: Online shop
    technologies: [React, Redux, React]
    source: vercel
  - id: b
    name: Notes
    description: Note taking
`)
	list, err := LoadFeatured(path)
	require.NoError(t, err)
	require.Len(t, list.Projects, 2)

	first := list.Projects[0]
	assert.Equal(t, "a", first.ID)
	assert.True(t, first.Featured)
	assert.Equal(t, models.SourceFeatured, first.Source)
	assert.Equal(t, []string{"React", "Redux"}, first.Technologies)
	assert.Equal(t, models.SourceFeatured, list.Projects[1].Source)
}

func TestLoadFeaturedErrors(t *testing.T) {
	tests := map[string]string{
		"missing id":          "projects:\n  - name: x\n    description: y\n",
		"missing name":        "projects:\n  - id: a\n    description: y\n",
		"missing description": "projects:\n  - id: a\n    name: x\n",
		"duplicate id":        "projects:\n  - {id: a, name: x, description: y}\n  - {id: a, name: z, description: w}\n",
		"bad yaml":            "projects: [",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFeatured(writeFile(t, content))
			assert.Error(t, err)
		})
	}

	_, err := LoadFeatured(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
