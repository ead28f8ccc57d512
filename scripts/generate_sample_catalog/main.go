package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gorestaurant/internal/model"
	"gorestaurant/internal/seed"

	"gopkg.in/yaml.v3"
)

const imageBase = "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-gorestaurant-mobile/"

// generateSampleCatalog writes the same sample catalog in every format the seeder reads:
// data/db.json, data/db.yaml and data/db.json.gz.
func main() {
	dataDir := "data"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	catalog := sampleCatalog()
	if err := catalog.Validate(); err != nil {
		log.Fatalf("Sample catalog is invalid: %v", err)
	}

	jsonData, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode JSON: %v", err)
	}
	jsonData = append(jsonData, '\n')

	yamlData, err := yaml.Marshal(catalog)
	if err != nil {
		log.Fatalf("Failed to encode YAML: %v", err)
	}

	files := []struct {
		name string
		gzip bool
		data []byte
	}{
		{name: "db.json", data: jsonData},
		{name: "db.yaml", data: yamlData},
		{name: "db.json.gz", gzip: true, data: jsonData},
	}

	for _, f := range files {
		filePath := filepath.Join(dataDir, f.name)

		if f.gzip {
			err = writeGzip(filePath, f.data)
		} else {
			err = os.WriteFile(filePath, f.data, 0644)
		}
		if err != nil {
			log.Fatalf("Failed to create %s: %v", f.name, err)
		}

		fmt.Printf("Created %s\n", filePath)
	}

	fmt.Printf("\nSample catalog: %d categories, %d foods\n", len(catalog.Categories), len(catalog.Foods))
	if orphans := catalog.OrphanFoods(); len(orphans) > 0 {
		fmt.Printf("Foods without a category: %v\n", orphans)
	}
}

func writeGzip(filePath string, data []byte) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	if _, err := gzipWriter.Write(data); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	return gzipWriter.Close()
}

func sampleCatalog() *seed.Catalog {
	return &seed.Catalog{
		Categories: []model.Category{
			{ID: 1, Title: "Massas", ImageURL: imageBase + "massas.png"},
			{ID: 2, Title: "Carnes", ImageURL: imageBase + "carnes.png"},
			{ID: 3, Title: "Pizzas", ImageURL: imageBase + "pizzas.png"},
		},
		Foods: []model.Food{
			{
				ID:           1,
				Name:         "Ao molho",
				Description:  "Macarrão ao molho branco, fughi e cheiro verde das montanhas.",
				Category:     1,
				Price:        19.9,
				ThumbnailURL: imageBase + "ao_molho.png",
				Extras: []model.Extra{
					{ID: 1, Name: "Bacon", Value: 1.5},
					{ID: 2, Name: "Frango", Value: 2},
				},
			},
			{
				ID:           2,
				Name:         "Veggie",
				Description:  "Macarrão com pimentão, ervilha e ervas finas colhidas no himalaia.",
				Category:     2,
				Price:        21.9,
				ThumbnailURL: imageBase + "veggie.png",
				Extras:       []model.Extra{{ID: 3, Name: "Bacon", Value: 1.5}},
			},
			{
				ID:           3,
				Name:         "A la Camarón",
				Description:  "Macarrão com vegetais de primeira linha e camarão dos 7 mares.",
				Category:     3,
				Price:        25.9,
				ThumbnailURL: imageBase + "camarao.png",
				Extras:       []model.Extra{{ID: 4, Name: "Bacon", Value: 1.5}},
			},
		},
	}
}
