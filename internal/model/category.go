package model

// Category groups foods and doubles as a dashboard filter.
type Category struct {
	ID       int    `json:"id" yaml:"id" db:"id"`
	Title    string `json:"title" yaml:"title" db:"title"`
	ImageURL string `json:"image_url" yaml:"image_url" db:"image_url"`
}
