// Package vercel fetches project records from the Vercel REST API.
package vercel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"bielbarbosa.dev/internal/models"
)

// DefaultBaseURL is the public Vercel API endpoint.
const DefaultBaseURL = "https://api.vercel.com"

// Config is passed to the client at construction; the bearer token never
// lives in source.
type Config struct {
	Token   string
	BaseURL string
	TeamID  string
}

// Client lists projects of one Vercel account.
type Client struct {
	cfg    Config
	client *http.Client
}

// NewClient creates a client. A nil http.Client means http.DefaultClient.
func NewClient(cfg Config, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	return &Client{cfg: cfg, client: client}
}

// ListProjects performs one GET against the project listing endpoint.
// Non-2xx responses, transport failures and undecodable bodies are errors.
func (c *Client) ListProjects(ctx context.Context) ([]models.RemoteProject, error) {
	endpoint := c.cfg.BaseURL + "/v6/projects"
	if c.cfg.TeamID != "" {
		endpoint += "?" + url.Values{"teamId": {c.cfg.TeamID}}.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build projects request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("projects request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var body models.RemoteProjectList
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode projects response: %w", err)
	}
	if body.Projects == nil {
		return []models.RemoteProject{}, nil
	}
	return body.Projects, nil
}

// StatusError reports a non-2xx answer from the API.
type StatusError struct {
	StatusCode int
	Status     string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("vercel projects returned %s", e.Status)
}
