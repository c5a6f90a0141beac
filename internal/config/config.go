package config

import (
	"fmt"
	"log/slog"
	"net"

	"github.com/kelseyhightower/envconfig"
)

// BaseEnv holds server and logging settings
type BaseEnv struct {
	Env            string   `envconfig:"ENV" default:"local"`
	HTTPHost       string   `envconfig:"HTTP_HOST" default:""`
	HTTPPort       string   `envconfig:"HTTP_PORT" default:"8080"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"info"`
	StaticDir      string   `envconfig:"STATIC_DIR" default:"static"`
	FeaturedFile   string   `envconfig:"FEATURED_FILE"`
	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
}

// VercelEnv configures the deployment-host project source
type VercelEnv struct {
	VercelToken  string `envconfig:"VERCEL_TOKEN"`
	VercelAPIURL string `envconfig:"VERCEL_API_URL" default:"https://api.vercel.com"`
	VercelTeamID string `envconfig:"VERCEL_TEAM_ID"`
}

// GitHubEnv configures the repository source and the account used for
// synthesized repository links
type GitHubEnv struct {
	GitHubUser   string `envconfig:"GITHUB_USER" default:"Biel-barbosa"`
	GitHubAPIURL string `envconfig:"GITHUB_API_URL" default:"https://api.github.com"`
}

// Config holds all application configuration
type Config struct {
	BaseEnv
	VercelEnv
	GitHubEnv
}

const namespace = "PORTFOLIO"

// Load reads configuration from PORTFOLIO_* environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(namespace, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load env: %w", err)
	}
	return &cfg, nil
}

// ServerAddr is the listen address
func (c *Config) ServerAddr() string {
	return net.JoinHostPort(c.HTTPHost, c.HTTPPort)
}

// SlogLevel parses LogLevel, falling back to info
func (c *Config) SlogLevel() slog.Level {
	if c == nil {
		return slog.LevelInfo
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
