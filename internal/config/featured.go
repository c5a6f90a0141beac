package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bielbarbosa.dev/internal/models"
)

// LoadFeatured reads a featured project list from a YAML file. Every entry
// is forced to the featured source; ids must be unique and each entry needs
// a name and a description.
func LoadFeatured(path string) (*models.ProjectList, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	var list models.ProjectList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(list.Projects))
	for i := range list.Projects {
		p := &list.Projects[i]
		switch {
		case p.ID == "":
			return nil, fmt.Errorf("%s: project %d has no id", path, i)
		case p.Name == "":
			return nil, fmt.Errorf("%s: project %q has no name", path, p.ID)
		case p.Description == "":
			return nil, fmt.Errorf("%s: project %q has no description", path, p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate project id %q", path, p.ID)
		}
		seen[p.ID] = struct{}{}

		p.Featured = true
		p.Source = models.SourceFeatured
		p.Technologies = dedupe(p.Technologies)
	}
	return &list, nil
}

func dedupe(tags []string) []string {
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
