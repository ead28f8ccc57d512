package service

import (
	"context"
	"fmt"
	"strings"

	"gorestaurant/internal/model"
	"gorestaurant/internal/repository"

	"github.com/rs/zerolog"
)

// foodService implements FoodService.
type foodService struct {
	foodRepo repository.FoodRepository
	logger   zerolog.Logger
}

// NewFoodService creates a new food service.
func NewFoodService(foodRepo repository.FoodRepository, logger zerolog.Logger) FoodService {
	return &foodService{
		foodRepo: foodRepo,
		logger:   logger.With().Str("service", "food").Logger(),
	}
}

// List retrieves foods matching the filter. A blank name filter is ignored.
func (s *foodService) List(ctx context.Context, filter model.FoodFilter) ([]model.Food, error) {
	if filter.CategoryID != nil && *filter.CategoryID <= 0 {
		s.logger.Warn().Int("category_id", *filter.CategoryID).Msg("invalid category filter")
		return nil, model.ErrInvalidCategory
	}
	filter.Name = strings.TrimSpace(filter.Name)

	foods, err := s.foodRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).
			Str("name_filter", filter.Name).
			Msg("failed to list foods")
		return nil, fmt.Errorf("failed to get foods: %w", err)
	}

	s.logger.Debug().
		Int("count", len(foods)).
		Bool("unfiltered", filter.IsEmpty()).
		Str("name_filter", filter.Name).
		Msg("retrieved foods")

	return foods, nil
}

// GetByID retrieves a single food by ID.
func (s *foodService) GetByID(ctx context.Context, id int) (*model.Food, error) {
	if id <= 0 {
		s.logger.Warn().Int("food_id", id).Msg("invalid food ID")
		return nil, model.ErrInvalidFoodID
	}

	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("food_id", id).Msg("failed to get food by ID")
		return nil, fmt.Errorf("failed to get food: %w", err)
	}

	if food == nil {
		s.logger.Debug().Int("food_id", id).Msg("food not found")
		return nil, model.ErrFoodNotFound
	}

	return food, nil
}
