package repository

import (
	"context"

	"gorestaurant/internal/model"

	"github.com/jackc/pgx/v5"
)

// CategoryRepository defines the interface for category data access operations.
type CategoryRepository interface {
	// List retrieves every category ordered by ID.
	List(ctx context.Context) ([]model.Category, error)

	// Upsert inserts or replaces categories within the provided transaction.
	Upsert(ctx context.Context, tx pgx.Tx, categories []model.Category) error
}

// FoodRepository defines the interface for food data access operations.
type FoodRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// List retrieves foods matching the filter, ordered by ID, with their extras.
	List(ctx context.Context, filter model.FoodFilter) ([]model.Food, error)

	// GetByID retrieves a single food with its extras.
	// Returns nil, nil when the food does not exist.
	GetByID(ctx context.Context, id int) (*model.Food, error)

	// Upsert inserts or replaces foods and their extras within the provided transaction.
	Upsert(ctx context.Context, tx pgx.Tx, foods []model.Food) error
}
