// Package github lists the public repositories of a GitHub user.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"bielbarbosa.dev/internal/models"
)

const DefaultBaseURL = "https://api.github.com"

type Client struct {
	baseURL string
	user    string
	client  *http.Client
}

func NewClient(baseURL, user string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		user:    user,
		client:  client,
	}
}

// ListRepos returns the user's repositories in API order.
func (c *Client) ListRepos(ctx context.Context) ([]models.Repo, error) {
	endpoint := fmt.Sprintf("%s/users/%s/repos", c.baseURL, url.PathEscape(c.user))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build repos request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("repos request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github repos returned %s", resp.Status)
	}

	var repos []models.Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("decode repos response: %w", err)
	}
	return repos, nil
}
