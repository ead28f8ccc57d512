package seed

import (
	"bytes"
	"compress/gzip"
	"strings"
	"testing"

	"gorestaurant/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonCatalog = `{
	"categories": [
		{"id": 1, "title": "Massas", "image_url": "https://example.com/massas.png"},
		{"id": 2, "title": "Pizzas", "image_url": "https://example.com/pizzas.png"}
	],
	"foods": [
		{
			"id": 1,
			"name": "Ao molho",
			"description": "Macarrão ao molho branco",
			"category": 1,
			"price": 19.9,
			"thumbnail_url": "https://example.com/ao_molho.png",
			"extras": [{"id": 1, "name": "Bacon", "value": 1.5}]
		}
	]
}`

const yamlCatalog = `
categories:
  - id: 1
    title: Massas
    image_url: https://example.com/massas.png
foods:
  - id: 1
    name: Ao molho
    description: Macarrão ao molho branco
    category: 1
    price: 19.9
    thumbnail_url: https://example.com/ao_molho.png
    extras:
      - id: 1
        name: Bacon
        value: 1.5
`

func gzipBytes(t *testing.T, data string) []byte {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func expectedFood() model.Food {
	return model.Food{
		ID:           1,
		Name:         "Ao molho",
		Description:  "Macarrão ao molho branco",
		Category:     1,
		Price:        19.9,
		ThumbnailURL: "https://example.com/ao_molho.png",
		Extras:       []model.Extra{{ID: 1, Name: "Bacon", Value: 1.5}},
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name          string
		file          string
		data          []byte
		expectedCats  int
		expectError   bool
		errorContains string
	}{
		{name: "JSON", file: "db.json", data: []byte(jsonCatalog), expectedCats: 2},
		{name: "Gzipped JSON", file: "catalog/db.json.gz", data: gzipBytes(t, jsonCatalog), expectedCats: 2},
		{name: "YAML", file: "db.yaml", data: []byte(yamlCatalog), expectedCats: 1},
		{name: "YML upper-case extension", file: "DB.YML", data: []byte(yamlCatalog), expectedCats: 1},
		{name: "Gzipped YAML", file: "db.yml.gz", data: gzipBytes(t, yamlCatalog), expectedCats: 1},
		{
			name:          "Unsupported extension",
			file:          "db.csv",
			data:          []byte("id,name"),
			expectError:   true,
			errorContains: "unsupported catalog format",
		},
		{
			name:          "Corrupt gzip",
			file:          "db.json.gz",
			data:          []byte("not gzip"),
			expectError:   true,
			errorContains: "gzip",
		},
		{
			name:          "Malformed JSON",
			file:          "db.json",
			data:          []byte(`{"foods": [`),
			expectError:   true,
			errorContains: "failed to decode JSON",
		},
		{
			name:          "Invalid content",
			file:          "db.json",
			data:          []byte(`{"foods": [{"id": 1, "price": -2}]}`),
			expectError:   true,
			errorContains: "negative price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, err := Decode(bytes.NewReader(tt.data), tt.file)

			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorContains)
				assert.Nil(t, catalog)
				return
			}

			require.NoError(t, err)
			assert.Len(t, catalog.Categories, tt.expectedCats)
			require.Len(t, catalog.Foods, 1)
			assert.Equal(t, expectedFood(), catalog.Foods[0])
			assert.Equal(t, "Massas", catalog.Categories[0].Title)
		})
	}
}

func TestCatalog_Validate(t *testing.T) {
	tests := []struct {
		name          string
		catalog       Catalog
		errorContains string
	}{
		{
			name: "Valid",
			catalog: Catalog{
				Categories: []model.Category{{ID: 1}},
				Foods:      []model.Food{{ID: 1, Category: 1, Extras: []model.Extra{{ID: 1}}}},
			},
		},
		{
			name:          "Zero category id",
			catalog:       Catalog{Categories: []model.Category{{ID: 0, Title: "x"}}},
			errorContains: "non-positive id",
		},
		{
			name:          "Duplicate category",
			catalog:       Catalog{Categories: []model.Category{{ID: 1}, {ID: 1}}},
			errorContains: "duplicate category id 1",
		},
		{
			name:          "Duplicate food",
			catalog:       Catalog{Foods: []model.Food{{ID: 2}, {ID: 2}}},
			errorContains: "duplicate food id 2",
		},
		{
			name: "Duplicate extra across foods",
			catalog: Catalog{Foods: []model.Food{
				{ID: 1, Extras: []model.Extra{{ID: 5}}},
				{ID: 2, Extras: []model.Extra{{ID: 5}}},
			}},
			errorContains: "duplicate extra id 5",
		},
		{
			name:          "Negative extra value",
			catalog:       Catalog{Foods: []model.Food{{ID: 1, Extras: []model.Extra{{ID: 1, Value: -1}}}}},
			errorContains: "negative value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.catalog.Validate()
			if tt.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.errorContains), err.Error())
		})
	}
}

func TestCatalog_OrphanFoods(t *testing.T) {
	catalog := Catalog{
		Categories: []model.Category{{ID: 1}, {ID: 2}},
		Foods:      []model.Food{{ID: 10, Category: 1}, {ID: 11, Category: 3}, {ID: 12, Category: 2}, {ID: 13, Category: 9}},
	}

	assert.Equal(t, []int{11, 13}, catalog.OrphanFoods())
	assert.Empty(t, (&Catalog{}).OrphanFoods())
}
