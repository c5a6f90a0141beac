package models

// Source identifies where a catalog entry came from
type Source string

const (
	SourceGitHub   Source = "github"
	SourceVercel   Source = "vercel"
	SourceFeatured Source = "featured"
)

// Project represents a portfolio project as shown on the site
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	ImageURL     string   `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	GitHubURL    string   `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	DeployURL    string   `json:"deploy_url,omitempty" yaml:"deploy_url,omitempty"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Featured     bool     `json:"featured,omitempty" yaml:"featured,omitempty"`
	DeployedAt   string   `json:"deployed_at,omitempty" yaml:"deployed_at,omitempty"`
	Source       Source   `json:"source" yaml:"source"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}
