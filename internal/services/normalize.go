package services

import (
	"fmt"
	"regexp"
	"strings"

	"bielbarbosa.dev/internal/models"
)

// NormalizeOptions carries the values the normalizer interpolates into
// synthesized links.
type NormalizeOptions struct {
	// GitHubAccount is the namespace used for guessed repository URLs.
	GitHubAccount string
}

const (
	productionHost    = "vercel.app"
	frameworkFallback = "tecnologias modernas"
	defaultImage      = "https://images.unsplash.com/photo-1498050108023-c5249f4df085"
)

// NormalizeRemoteProject maps a deployment-host record onto the local
// Project shape. It is pure: no I/O, no clock, same input gives same output.
//
// Everything it derives from the project name (technologies, description,
// image, links) is best-effort enrichment. The GitHub and deploy URLs are
// guesses and are never checked for existence.
func NormalizeRemoteProject(rec models.RemoteProject, opts NormalizeOptions) models.Project {
	name := strings.ToLower(rec.Name)
	slug := Slugify(rec.Name)

	p := models.Project{
		ID:           rec.ID,
		Name:         rec.Name,
		Description:  describe(rec, name),
		ImageURL:     imageFor(name),
		GitHubURL:    fmt.Sprintf("https://github.com/%s/%s", opts.GitHubAccount, slug),
		Technologies: technologiesFor(rec, name),
		Source:       models.SourceVercel,
	}

	if d, ok := latestDeployment(rec.LatestDeployments); ok {
		if strings.Contains(d.URL, productionHost) {
			p.DeployURL = fmt.Sprintf("https://%s.%s", slug, productionHost)
		}
		p.DeployedAt = d.CreatedAt.String()
	}
	return p
}

var whitespace = regexp.MustCompile(`\s+`)

// Slugify lowercases s and replaces every run of whitespace with a hyphen.
func Slugify(s string) string {
	return whitespace.ReplaceAllString(strings.ToLower(s), "-")
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func technologiesFor(rec models.RemoteProject, name string) []string {
	framework := strings.ToLower(rec.Framework)

	var techs []string
	switch {
	case strings.Contains(framework, "next"):
		techs = append(techs, "Next.js", "React")
	case strings.Contains(framework, "react"):
		techs = append(techs, "React")
	case strings.Contains(framework, "vue"):
		techs = append(techs, "Vue.js")
	case strings.Contains(framework, "angular"):
		techs = append(techs, "Angular")
	case strings.Contains(framework, "svelte"):
		techs = append(techs, "Svelte")
	default:
		techs = append(techs, "JavaScript")
	}

	switch {
	case containsAny(name, "dashboard", "admin"):
		techs = append(techs, "ChartJS", "Tailwind CSS", "ShadcnUI")
	case containsAny(name, "ecommerce", "loja"):
		techs = append(techs, "Redux", "Stripe", "Tailwind CSS")
	case containsAny(name, "blog"):
		techs = append(techs, "Markdown", "CMS", "Tailwind CSS")
	case containsAny(name, "api", "backend"):
		techs = append(techs, "Node.js", "Express", "MongoDB")
	case containsAny(name, "app", "aplicativo"):
		techs = append(techs, "Tailwind CSS", "React Query", "Zod")
	case containsAny(name, "portfolio", "site"):
		techs = append(techs, "Tailwind CSS", "Framer Motion", "TypeScript")
	default:
		techs = append(techs, "Tailwind CSS", "TypeScript")
	}
	return uniqueTags(techs)
}

func uniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

func describe(rec models.RemoteProject, name string) string {
	framework := rec.Framework
	if framework == "" {
		framework = frameworkFallback
	}

	switch {
	case containsAny(name, "dashboard"):
		return fmt.Sprintf("Painel administrativo %s desenvolvido com %s para visualização de dados e gerenciamento de recursos. "+
			"Inclui gráficos interativos, tabelas dinâmicas e controle de acesso.", rec.Name, framework)
	case containsAny(name, "ecommerce", "loja"):
		return fmt.Sprintf("Plataforma de e-commerce %s com catálogo de produtos, carrinho de compras e checkout seguro. "+
			"Integração com sistemas de pagamento e gerenciamento de estoque.", rec.Name)
	case containsAny(name, "landing", "page"):
		return fmt.Sprintf("Landing page moderna e responsiva para %s, otimizada para conversão e experiência do usuário. "+
			"Design clean com animações suaves e formulários de contato.", rec.Name)
	case containsAny(name, "blog"):
		return fmt.Sprintf("Blog %s com sistema de gerenciamento de conteúdo, categorias e comentários. "+
			"Interface amigável para criação e edição de posts com suporte a Markdown.", rec.Name)
	case containsAny(name, "app", "aplicativo"):
		return fmt.Sprintf("Aplicativo web %s com interface responsiva e experiência de usuário aprimorada. "+
			"Recursos de autenticação, persistência de dados e navegação intuitiva.", rec.Name)
	case containsAny(name, "portfolio", "site"):
		return fmt.Sprintf("Site de portfólio %s com design moderno e responsivo. "+
			"Apresentação de projetos, habilidades e informações profissionais de maneira interativa e visualmente atraente.", rec.Name)
	default:
		return fmt.Sprintf("Aplicação web %s desenvolvida com %s para oferecer uma experiência de usuário excepcional. "+
			"Solução eficiente e escalável para os desafios propostos.", rec.Name, framework)
	}
}

func imageFor(name string) string {
	switch {
	case containsAny(name, "dashboard"):
		return "https://images.unsplash.com/photo-1531297484001-80022131f5a1"
	case containsAny(name, "ecommerce"):
		return "https://images.unsplash.com/photo-1460925895917-afdab827c52f"
	case containsAny(name, "blog"):
		return "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d"
	case containsAny(name, "api"):
		return "https://images.unsplash.com/photo-1518770660439-4636190af475"
	case containsAny(name, "portfolio", "site"):
		return "https://images.unsplash.com/photo-1542744173-8e7e53415bb0"
	case containsAny(name, "app", "aplicativo"):
		return "https://images.unsplash.com/photo-1551650975-87deedd944c3"
	default:
		return defaultImage
	}
}

// latestDeployment picks the entry with the newest parsable timestamp.
// When no timestamp parses it falls back to the first entry, which is the
// newest one in API order.
func latestDeployment(deployments []models.RemoteDeployment) (models.RemoteDeployment, bool) {
	if len(deployments) == 0 {
		return models.RemoteDeployment{}, false
	}
	best := -1
	var bestMillis int64
	for i, d := range deployments {
		ms, ok := d.CreatedAt.Millis()
		if !ok {
			continue
		}
		if best == -1 || ms > bestMillis {
			best, bestMillis = i, ms
		}
	}
	if best == -1 {
		best = 0
	}
	return deployments[best], true
}
