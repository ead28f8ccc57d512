package service

import (
	"context"

	"gorestaurant/internal/model"
)

// CategoryService defines operations for the category catalogue.
type CategoryService interface {
	// List retrieves every category in ID order.
	List(ctx context.Context) ([]model.Category, error)
}

// FoodService defines operations for the food catalogue.
type FoodService interface {
	// List retrieves foods matching the filter.
	List(ctx context.Context, filter model.FoodFilter) ([]model.Food, error)

	// GetByID retrieves a single food by ID.
	GetByID(ctx context.Context, id int) (*model.Food, error)
}
