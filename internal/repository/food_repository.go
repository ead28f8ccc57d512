package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorestaurant/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// foodRepository implements the FoodRepository interface using PostgreSQL.
type foodRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFoodRepository creates a new PostgreSQL-backed food repository.
func NewFoodRepository(pool *pgxpool.Pool, logger zerolog.Logger) FoodRepository {
	return &foodRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "food").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *foodRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// List retrieves foods matching the filter, ordered by ID, with their extras.
func (r *foodRepository) List(ctx context.Context, filter model.FoodFilter) ([]model.Food, error) {
	query := `
		SELECT id, name, description, category_id, price, thumbnail_url
		FROM foods
	`

	var where []string
	var args []interface{}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}

	if filter.Name != "" {
		args = append(args, "%"+escapeLike(filter.Name)+"%")
		where = append(where, fmt.Sprintf(`name ILIKE $%d ESCAPE '\'`, len(args)))
	}

	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY id"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).
			Str("name_filter", filter.Name).
			Msg("failed to query foods")
		return nil, fmt.Errorf("failed to query foods: %w", err)
	}
	defer rows.Close()

	foods := []model.Food{}
	for rows.Next() {
		var f model.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Description, &f.Category, &f.Price, &f.ThumbnailURL); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan food row")
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}
		foods = append(foods, f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating food rows")
		return nil, fmt.Errorf("error iterating foods: %w", err)
	}

	if err := r.attachExtras(ctx, foods); err != nil {
		return nil, err
	}

	return foods, nil
}

// GetByID retrieves a single food with its extras.
func (r *foodRepository) GetByID(ctx context.Context, id int) (*model.Food, error) {
	query := `
		SELECT id, name, description, category_id, price, thumbnail_url
		FROM foods
		WHERE id = $1
	`

	var f model.Food
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&f.ID, &f.Name, &f.Description, &f.Category, &f.Price, &f.ThumbnailURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Int("food_id", id).Msg("food not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int("food_id", id).Msg("failed to query food")
		return nil, fmt.Errorf("failed to query food: %w", err)
	}

	foods := []model.Food{f}
	if err := r.attachExtras(ctx, foods); err != nil {
		return nil, err
	}

	return &foods[0], nil
}

// attachExtras loads the extras of every food in one query.
// Foods without extras get an empty, non-nil slice so they encode as [].
func (r *foodRepository) attachExtras(ctx context.Context, foods []model.Food) error {
	if len(foods) == 0 {
		return nil
	}

	ids := make([]int, len(foods))
	index := make(map[int]int, len(foods))
	for i := range foods {
		ids[i] = foods[i].ID
		index[foods[i].ID] = i
		foods[i].Extras = []model.Extra{}
	}

	query := `
		SELECT id, food_id, name, value
		FROM food_extras
		WHERE food_id = ANY($1)
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query food extras")
		return fmt.Errorf("failed to query food extras: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e      model.Extra
			foodID int
		)
		if err := rows.Scan(&e.ID, &foodID, &e.Name, &e.Value); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan food extra row")
			return fmt.Errorf("failed to scan food extra: %w", err)
		}
		if i, ok := index[foodID]; ok {
			foods[i].Extras = append(foods[i].Extras, e)
		}
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating food extra rows")
		return fmt.Errorf("error iterating food extras: %w", err)
	}

	return nil
}

// Upsert inserts or replaces foods and their extras within the provided transaction.
// Extras of an upserted food are replaced wholesale.
func (r *foodRepository) Upsert(ctx context.Context, tx pgx.Tx, foods []model.Food) error {
	if len(foods) == 0 {
		return nil
	}

	foodQuery := `
		INSERT INTO foods (id, name, description, category_id, price, thumbnail_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			description = EXCLUDED.description,
			category_id = EXCLUDED.category_id,
			price = EXCLUDED.price,
			thumbnail_url = EXCLUDED.thumbnail_url
	`
	clearExtrasQuery := `DELETE FROM food_extras WHERE food_id = $1`
	extraQuery := `
		INSERT INTO food_extras (id, food_id, name, value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET food_id = EXCLUDED.food_id, name = EXCLUDED.name, value = EXCLUDED.value
	`

	batch := &pgx.Batch{}
	for _, f := range foods {
		batch.Queue(foodQuery, f.ID, f.Name, f.Description, f.Category, f.Price, f.ThumbnailURL)
		batch.Queue(clearExtrasQuery, f.ID)
		for _, e := range f.Extras {
			batch.Queue(extraQuery, e.ID, f.ID, e.Name, e.Value)
		}
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().Err(err).Int("statement", i).Msg("failed to upsert food")
			return fmt.Errorf("failed to upsert foods: %w", err)
		}
	}

	r.logger.Debug().Int("count", len(foods)).Msg("foods upserted")

	return nil
}

// escapeLike escapes LIKE wildcards so user input matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
