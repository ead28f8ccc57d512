package seed

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"
	"strings"

	"gorestaurant/internal/model"

	"gopkg.in/yaml.v3"
)

// Catalog is the seed document: the same shape as a json-server db.json.
type Catalog struct {
	Categories []model.Category `json:"categories" yaml:"categories"`
	Foods      []model.Food     `json:"foods" yaml:"foods"`
}

// Loader defines the interface for loading catalog documents.
type Loader interface {
	// Load reads the catalog document at name.
	Load(ctx context.Context, name string) (*Catalog, error)
}

// Decode parses a catalog document. The format follows the name's extension:
// ".json", ".yaml" or ".yml", optionally followed by ".gz" for gzip.
func Decode(r io.Reader, name string) (*Catalog, error) {
	base := strings.ToLower(path.Base(name))

	if strings.HasSuffix(base, ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()

		r = gzipReader
		base = strings.TrimSuffix(base, ".gz")
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", name, err)
	}

	var catalog Catalog
	switch path.Ext(base) {
	case ".json":
		decoder := json.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(&catalog); err != nil {
			return nil, fmt.Errorf("failed to decode JSON catalog %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &catalog); err != nil {
			return nil, fmt.Errorf("failed to decode YAML catalog %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s", name)
	}

	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", name, err)
	}

	return &catalog, nil
}

// Validate checks identifiers are positive and unique and amounts are not negative.
func (c *Catalog) Validate() error {
	categoryIDs := make(map[int]struct{}, len(c.Categories))
	for _, category := range c.Categories {
		if category.ID <= 0 {
			return fmt.Errorf("category %q has non-positive id %d", category.Title, category.ID)
		}
		if _, dup := categoryIDs[category.ID]; dup {
			return fmt.Errorf("duplicate category id %d", category.ID)
		}
		categoryIDs[category.ID] = struct{}{}
	}

	foodIDs := make(map[int]struct{}, len(c.Foods))
	extraIDs := make(map[int]struct{})
	for _, food := range c.Foods {
		if food.ID <= 0 {
			return fmt.Errorf("food %q has non-positive id %d", food.Name, food.ID)
		}
		if _, dup := foodIDs[food.ID]; dup {
			return fmt.Errorf("duplicate food id %d", food.ID)
		}
		foodIDs[food.ID] = struct{}{}

		if food.Price < 0 {
			return fmt.Errorf("food %d has negative price", food.ID)
		}

		for _, extra := range food.Extras {
			if extra.ID <= 0 {
				return fmt.Errorf("extra %q of food %d has non-positive id", extra.Name, food.ID)
			}
			if _, dup := extraIDs[extra.ID]; dup {
				return fmt.Errorf("duplicate extra id %d", extra.ID)
			}
			extraIDs[extra.ID] = struct{}{}

			if extra.Value < 0 {
				return fmt.Errorf("extra %d has negative value", extra.ID)
			}
		}
	}

	return nil
}

// OrphanFoods returns the IDs of foods whose category is not in the catalog.
func (c *Catalog) OrphanFoods() []int {
	known := make(map[int]struct{}, len(c.Categories))
	for _, category := range c.Categories {
		known[category.ID] = struct{}{}
	}

	var orphans []int
	for _, food := range c.Foods {
		if _, ok := known[food.Category]; !ok {
			orphans = append(orphans, food.ID)
		}
	}
	return orphans
}
