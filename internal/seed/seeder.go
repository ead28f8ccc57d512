package seed

import (
	"context"
	"fmt"

	"gorestaurant/internal/repository"

	"github.com/rs/zerolog"
)

// Seeder writes a catalog into the database.
type Seeder struct {
	categoryRepo repository.CategoryRepository
	foodRepo     repository.FoodRepository
	logger       zerolog.Logger
}

// NewSeeder creates a seeder over the catalog repositories.
func NewSeeder(categoryRepo repository.CategoryRepository, foodRepo repository.FoodRepository, logger zerolog.Logger) *Seeder {
	return &Seeder{
		categoryRepo: categoryRepo,
		foodRepo:     foodRepo,
		logger:       logger.With().Str("component", "seeder").Logger(),
	}
}

// Seed upserts categories then foods in a single transaction.
func (s *Seeder) Seed(ctx context.Context, catalog *Catalog) (err error) {
	if orphans := catalog.OrphanFoods(); len(orphans) > 0 {
		s.logger.Warn().Ints("food_ids", orphans).Msg("foods reference unknown categories")
	}

	tx, err := s.foodRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.categoryRepo.Upsert(ctx, tx, catalog.Categories); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	if err = s.foodRepo.Upsert(ctx, tx, catalog.Foods); err != nil {
		return fmt.Errorf("failed to seed foods: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Msg("failed to commit seed transaction")
		return fmt.Errorf("failed to commit catalog: %w", err)
	}

	s.logger.Info().
		Int("categories", len(catalog.Categories)).
		Int("foods", len(catalog.Foods)).
		Msg("catalog seeded")

	return nil
}
