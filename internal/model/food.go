package model

// Food represents a dish on the menu.
type Food struct {
	ID           int     `json:"id" yaml:"id" db:"id"`
	Name         string  `json:"name" yaml:"name" db:"name"`
	Description  string  `json:"description" yaml:"description" db:"description"`
	Category     int     `json:"category" yaml:"category" db:"category_id"`
	Price        float64 `json:"price" yaml:"price" db:"price"`
	ThumbnailURL string  `json:"thumbnail_url" yaml:"thumbnail_url" db:"thumbnail_url"`
	Extras       []Extra `json:"extras" yaml:"extras"`
}

// Extra is an optional add-on to a food with its own price delta.
type Extra struct {
	ID    int     `json:"id" yaml:"id" db:"id"`
	Name  string  `json:"name" yaml:"name" db:"name"`
	Value float64 `json:"value" yaml:"value" db:"value"`
}

// FoodFilter narrows a food listing. Zero values mean "no filter".
type FoodFilter struct {
	// CategoryID matches foods of exactly this category.
	CategoryID *int
	// Name matches foods whose name contains it, case-insensitively.
	Name string
}

// IsEmpty reports whether the filter selects every food.
func (f FoodFilter) IsEmpty() bool {
	return f.CategoryID == nil && f.Name == ""
}
