package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bielbarbosa.dev/internal/models"
)

var testOpts = NormalizeOptions{GitHubAccount: "Biel-barbosa"}

func TestNormalizeAdminDashboard(t *testing.T) {
	p := NormalizeRemoteProject(models.RemoteProject{ID: "p1", Name: "Admin Dashboard", Framework: "next"}, testOpts)

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Admin Dashboard", p.Name)
	assert.Equal(t, []string{"Next.js", "React", "ChartJS", "Tailwind CSS", "ShadcnUI"}, p.Technologies)
	assert.Contains(t, p.Description, "Painel administrativo Admin Dashboard desenvolvido com next")
	assert.Equal(t, "https://images.unsplash.com/photo-1531297484001-80022131f5a1", p.ImageURL)
	assert.Equal(t, "https://github.com/Biel-barbosa/admin-dashboard", p.GitHubURL)
	assert.Empty(t, p.DeployURL)
	assert.Empty(t, p.DeployedAt)
	assert.False(t, p.Featured)
	assert.Equal(t, models.SourceVercel, p.Source)
}

func TestNormalizeBlogWithoutFramework(t *testing.T) {
	p := NormalizeRemoteProject(models.RemoteProject{ID: "p2", Name: "My Blog", Framework: ""}, testOpts)

	assert.Equal(t, []string{"JavaScript", "Markdown", "CMS", "Tailwind CSS"}, p.Technologies)
	assert.True(t, strings.HasPrefix(p.Description, "Blog My Blog "))
	assert.Equal(t, "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d", p.ImageURL)
}

func TestNormalizeFrameworkFallbackPhrase(t *testing.T) {
	p := NormalizeRemoteProject(models.RemoteProject{ID: "p3", Name: "Weather"}, testOpts)

	assert.Equal(t, []string{"JavaScript", "Tailwind CSS", "TypeScript"}, p.Technologies)
	assert.Contains(t, p.Description, "Aplicação web Weather desenvolvida com tecnologias modernas")
	assert.Equal(t, defaultImage, p.ImageURL)
}

func TestNormalizeCategoryOrder(t *testing.T) {
	tests := []struct {
		name      string
		framework string
		techs     []string
		descStart string
		image     string
	}{
		{"Loja Virtual", "react", []string{"React", "Redux", "Stripe", "Tailwind CSS"}, "Plataforma de e-commerce", defaultImage},
		{"ecommerce-shop", "vue", []string{"Vue.js", "Redux", "Stripe", "Tailwind CSS"}, "Plataforma de e-commerce", "https://images.unsplash.com/photo-1460925895917-afdab827c52f"},
		{"Backend API", "angular", []string{"Angular", "Node.js", "Express", "MongoDB"}, "Aplicação web", "https://images.unsplash.com/photo-1518770660439-4636190af475"},
		{"Landing Page", "svelte", []string{"Svelte", "Tailwind CSS", "TypeScript"}, "Landing page moderna", defaultImage},
		{"Todo App", "nextjs", []string{"Next.js", "React", "Tailwind CSS", "React Query", "Zod"}, "Aplicativo web", "https://images.unsplash.com/photo-1551650975-87deedd944c3"},
		{"Meu Portfolio", "create-react-app", []string{"React", "Tailwind CSS", "Framer Motion", "TypeScript"}, "Site de portfólio", "https://images.unsplash.com/photo-1542744173-8e7e53415bb0"},
		{"admin panel", "", []string{"JavaScript", "ChartJS", "Tailwind CSS", "ShadcnUI"}, "Aplicação web", defaultImage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NormalizeRemoteProject(models.RemoteProject{ID: tt.name, Name: tt.name, Framework: tt.framework}, testOpts)
			assert.Equal(t, tt.techs, p.Technologies)
			assert.True(t, strings.HasPrefix(p.Description, tt.descStart), p.Description)
			assert.Equal(t, tt.image, p.ImageURL)
		})
	}
}

func TestNormalizeDeployment(t *testing.T) {
	rec := models.RemoteProject{
		ID:   "prj_9",
		Name: "Portfolio  Site",
		LatestDeployments: []models.RemoteDeployment{
			{URL: "old.example.com", CreatedAt: models.NewTimestampMillis(1_700_000_000_000)},
			{URL: "portfolio-site-git-main.vercel.app", CreatedAt: models.NewTimestampMillis(1_717_430_400_000)},
		},
	}
	p := NormalizeRemoteProject(rec, testOpts)

	assert.Equal(t, "https://portfolio-site.vercel.app", p.DeployURL)
	assert.Equal(t, "2024-06-03T16:00:00Z", p.DeployedAt)
	assert.Equal(t, "https://github.com/Biel-barbosa/portfolio-site", p.GitHubURL)
}

func TestNormalizeNonProductionDeployment(t *testing.T) {
	rec := models.RemoteProject{
		ID:   "prj_10",
		Name: "Blog",
		LatestDeployments: []models.RemoteDeployment{
			{URL: "blog.example.com", CreatedAt: models.NewTimestampString("2025-01-02T03:04:05Z")},
		},
	}
	p := NormalizeRemoteProject(rec, testOpts)

	assert.Empty(t, p.DeployURL)
	assert.Equal(t, "2025-01-02T03:04:05Z", p.DeployedAt)
}

func TestLatestDeployment(t *testing.T) {
	_, ok := latestDeployment(nil)
	assert.False(t, ok)

	unparsable := []models.RemoteDeployment{
		{URL: "first", CreatedAt: models.NewTimestampString("yesterday")},
		{URL: "second", CreatedAt: models.NewTimestampString("today")},
	}
	d, ok := latestDeployment(unparsable)
	require.True(t, ok)
	assert.Equal(t, "first", d.URL)

	mixed := []models.RemoteDeployment{
		{URL: "a", CreatedAt: models.NewTimestampMillis(10)},
		{URL: "b", CreatedAt: models.NewTimestampString("junk")},
		{URL: "c", CreatedAt: models.NewTimestampMillis(30)},
	}
	d, _ = latestDeployment(mixed)
	assert.Equal(t, "c", d.URL)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "my-cool-app", Slugify("My Cool App"))
	assert.Equal(t, "my-cool-app", Slugify("My \t Cool\nApp"))
	assert.Equal(t, "-padded-", Slugify(" Padded "))
	assert.Equal(t, "already-slugged", Slugify("already-slugged"))
}

func TestUniqueTags(t *testing.T) {
	assert.Equal(t, []string{"React", "Tailwind CSS", "react"}, uniqueTags([]string{"React", "Tailwind CSS", "React", "react", "Tailwind CSS"}))
	assert.Empty(t, uniqueTags(nil))
}

func TestNormalizeProperties(t *testing.T) {
	names := []string{"", "x", "Admin", "dashboard", "Loja", "ecommerce", "landing", "blog", "api", "backend",
		"app", "aplicativo", "portfolio", "site", "Blog API App Site", "ADMIN SITE"}
	frameworks := []string{"", "nextjs", "react", "vue", "angular", "sveltekit", "remix", "NEXT"}

	for _, name := range names {
		for _, framework := range frameworks {
			rec := models.RemoteProject{
				ID:        name + "/" + framework,
				Name:      name,
				Framework: framework,
				LatestDeployments: []models.RemoteDeployment{
					{URL: "x.vercel.app", CreatedAt: models.NewTimestampMillis(42)},
				},
			}
			first := NormalizeRemoteProject(rec, testOpts)
			second := NormalizeRemoteProject(rec, testOpts)

			assert.Equal(t, first, second, "normalization must be deterministic")
			assert.NotEmpty(t, first.Description)
			assert.Len(t, uniqueTags(first.Technologies), len(first.Technologies), "duplicate technology tags")
			assert.NotEqual(t, models.SourceFeatured, first.Source)
		}
	}
}
