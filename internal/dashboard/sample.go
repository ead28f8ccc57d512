package dashboard

import "gorestaurant/internal/model"

const thumbnailBase = "https://storage.googleapis.com/golden-wind/bootcamp-gostack/desafio-gorestaurant-mobile/"

// SampleFoods returns the list shown while no category or search is set.
// Each call returns fresh slices.
func SampleFoods() []model.Food {
	return []model.Food{
		{
			ID:           1,
			Name:         "Ao molho",
			Description:  "Macarrão ao molho branco, fughi e cheiro verde das montanhas.",
			Category:     1,
			Price:        19.9,
			ThumbnailURL: thumbnailBase + "ao_molho.png",
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
			ThumbnailURL: thumbnailBase + "veggie.png",
			Extras: []model.Extra{
				{ID: 3, Name: "Bacon", Value: 1.5},
			},
		},
		{
			ID:           3,
			Name:         "A la Camarón",
			Description:  "Macarrão com vegetais de primeira linha e camarão dos 7 mares.",
			Category:     3,
			Price:        25.9,
			ThumbnailURL: thumbnailBase + "camarao.png",
			Extras: []model.Extra{
				{ID: 4, Name: "Bacon", Value: 1.5},
			},
		},
	}
}
