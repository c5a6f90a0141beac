package services

import "bielbarbosa.dev/internal/models"

// DefaultFeatured returns the built-in featured projects. A fresh slice is
// returned on every call so callers may not alias each other's catalog.
func DefaultFeatured() []models.Project {
	return []models.Project{
		{
			ID:   "1",
			Name: "E-commerce React",
			Description: "Plataforma completa de e-commerce desenvolvida com React, TypeScript, e TailwindCSS. " +
				"Inclui autenticação de usuários, carrinho de compras, e integração com API de pagamentos.",
			ImageURL:     "https://images.unsplash.com/photo-1498050108023-c5249f4df085",
			GitHubURL:    "https://github.com/Biel-barbosa/ecommerce-react",
			DeployURL:    "https://ecommerce-react-vercel.app",
			Technologies: []string{"React", "TypeScript", "Tailwind CSS", "Redux"},
			Featured:     true,
			Source:       models.SourceFeatured,
		},
		{
			ID:   "2",
			Name: "CMS Dashboard",
			Description: "Sistema de gerenciamento de conteúdo com painel administrativo intuitivo. " +
				"Permite gerenciar posts, usuários e estatísticas em tempo real.",
			ImageURL:     "https://images.unsplash.com/photo-1460925895917-afdab827c52f",
			GitHubURL:    "https://github.com/Biel-barbosa/cms-dashboard",
			DeployURL:    "https://cms-dashboard-vercel.app",
			Technologies: []string{"Next.js", "TypeScript", "Tailwind CSS", "Prisma", "MongoDB"},
			Featured:     true,
			Source:       models.SourceFeatured,
		},
		{
			ID:   "3",
			Name: "App de Tarefas",
			Description: "Aplicativo de gerenciamento de tarefas com funcionalidades de arrastar e soltar, " +
				"categorização e lembretes por email.",
			ImageURL:     "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d",
			GitHubURL:    "https://github.com/Biel-barbosa/task-app",
			DeployURL:    "https://task-app-vercel.app",
			Technologies: []string{"Vue.js", "JavaScript", "CSS", "Firebase"},
			Featured:     true,
			Source:       models.SourceFeatured,
		},
	}
}
