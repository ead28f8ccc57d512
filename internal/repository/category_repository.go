package repository

import (
	"context"
	"fmt"

	"gorestaurant/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// categoryRepository implements the CategoryRepository interface using PostgreSQL.
type categoryRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCategoryRepository creates a new PostgreSQL-backed category repository.
func NewCategoryRepository(pool *pgxpool.Pool, logger zerolog.Logger) CategoryRepository {
	return &categoryRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "category").Logger(),
	}
}

// List retrieves every category ordered by ID.
func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	query := `
		SELECT id, title, image_url
		FROM categories
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.ImageURL); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// Upsert inserts or replaces categories within the provided transaction.
func (r *categoryRepository) Upsert(ctx context.Context, tx pgx.Tx, categories []model.Category) error {
	if len(categories) == 0 {
		return nil
	}

	query := `
		INSERT INTO categories (id, title, image_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE
		SET title = EXCLUDED.title, image_url = EXCLUDED.image_url
	`

	batch := &pgx.Batch{}
	for _, c := range categories {
		batch.Queue(query, c.ID, c.Title, c.ImageURL)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := range categories {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Int("category_id", categories[i].ID).
				Msg("failed to upsert category")
			return fmt.Errorf("failed to upsert category %d: %w", categories[i].ID, err)
		}
	}

	r.logger.Debug().Int("count", len(categories)).Msg("categories upserted")

	return nil
}
