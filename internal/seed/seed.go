// Package seed loads the initial list.
package seed

import (
	"fmt"
	"os"
	"strings"

	"github.com/sandeepkv93/shoplist/internal/model"
	"gopkg.in/yaml.v3"
)

type file struct {
	Items []model.SeedItem `yaml:"items"`
}

// Load returns the default seed when path is empty, otherwise the items of
// the YAML file at path.
func Load(path string) ([]model.SeedItem, error) {
	if strings.TrimSpace(path) == "" {
		return model.DefaultSeed(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) ([]model.SeedItem, error) {
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	out := make([]model.SeedItem, 0, len(f.Items))
	for i, item := range f.Items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: seed item %d has no name", model.ErrInvalidInput, i+1)
		}
		out = append(out, model.SeedItem{Name: name, Checked: item.Checked})
	}
	return out, nil
}
