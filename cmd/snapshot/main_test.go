package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bielbarbosa.dev/internal/models"
	"bielbarbosa.dev/internal/services"
)

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.json")
	snap := projectSnapshot{
		SnapshotID:  "01HZ",
		Status:      services.CatalogFallback,
		Error:       "vercel projects returned 401 Unauthorized",
		ProjectList: models.ProjectList{Projects: services.DefaultFeatured()},
	}
	require.NoError(t, writeJSON(path, snap))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "01HZ", got["snapshot_id"])
	assert.Equal(t, "fallback", got["status"])
	assert.Len(t, got["projects"], 3)
}

func TestWriteJSONBadPath(t *testing.T) {
	err := writeJSON(filepath.Join(t.TempDir(), "missing", "repos.json"), repoSnapshot{})
	assert.Error(t, err)
}
