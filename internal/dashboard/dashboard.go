// Package dashboard is the headless model of the app's Dashboard screen:
// a category selector, a search box and the food list they filter.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"gorestaurant/internal/client"
	"gorestaurant/internal/model"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// API is the subset of the catalog API the screen reads from.
type API interface {
	Categories(ctx context.Context) ([]model.Category, error)
	Foods(ctx context.Context, query client.FoodQuery) ([]model.Food, error)
}

// Navigator moves the app to another screen.
type Navigator interface {
	// FoodDetails opens the "FoodDetails" screen for a food.
	FoodDetails(id int)
	// Home opens the "Home" screen.
	Home()
}

// Dashboard holds the screen state. Its methods are safe for concurrent use;
// network calls run without holding the lock.
type Dashboard struct {
	api    API
	nav    Navigator
	logger zerolog.Logger

	mu         sync.Mutex
	categories []model.Category
	foods      []model.Food
	selected   *int
	search     string

	// generation increments on every food load; only the latest may publish.
	generation uint64
	cancel     context.CancelFunc
}

// New creates a dashboard with empty state. Call Mount to populate it.
func New(api API, nav Navigator, logger zerolog.Logger) *Dashboard {
	return &Dashboard{
		api:        api,
		nav:        nav,
		logger:     logger.With().Str("component", "dashboard").Logger(),
		categories: []model.Category{},
		foods:      []model.Food{},
	}
}

// Mount loads the categories and the initial food list concurrently.
func (d *Dashboard) Mount(ctx context.Context) error {
	var g errgroup.Group
	g.Go(func() error { return d.LoadCategories(ctx) })
	g.Go(func() error { return d.LoadFoods(ctx) })
	return g.Wait()
}

// LoadCategories fetches every category and stores them in response order.
// On failure the current categories are kept.
func (d *Dashboard) LoadCategories(ctx context.Context) error {
	categories, err := d.api.Categories(ctx)
	if err != nil {
		d.logger.Error().Err(err).Msg("failed to load categories")
		return fmt.Errorf("failed to load categories: %w", err)
	}
	if categories == nil {
		categories = []model.Category{}
	}

	d.mu.Lock()
	d.categories = categories
	d.mu.Unlock()

	d.logger.Debug().Int("count", len(categories)).Msg("categories loaded")
	return nil
}

// LoadFoods refreshes the food list for the current selection and search.
//
// A non-blank search wins over the selected category and only one request is
// made. With neither set the list is the built-in sample. Starting a load
// cancels any load still in flight; a result that arrives after a newer load
// started is discarded. On failure the current list is kept.
func (d *Dashboard) LoadFoods(ctx context.Context) error {
	d.mu.Lock()
	query, filtered := d.queryLocked()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.generation++
	gen := d.generation

	if !filtered {
		d.foods = SampleFoods()
		d.mu.Unlock()
		d.logger.Debug().Msg("no filter set, showing sample foods")
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.mu.Unlock()
	defer cancel()

	foods, err := d.api.Foods(ctx, query)

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.generation {
		d.logger.Debug().
			Uint64("generation", gen).
			Uint64("latest", d.generation).
			Msg("discarding stale food list")
		return nil
	}
	d.cancel = nil

	if err != nil {
		d.logger.Error().Err(err).
			Interface("category", query.CategoryID).
			Str("search", query.Name).
			Msg("failed to load foods")
		return fmt.Errorf("failed to load foods: %w", err)
	}
	if foods == nil {
		foods = []model.Food{}
	}

	d.foods = foods
	d.logger.Debug().
		Int("count", len(foods)).
		Interface("category", query.CategoryID).
		Str("search", query.Name).
		Msg("foods loaded")
	return nil
}

// queryLocked builds the food request for the current state and reports
// whether any filter is set. d.mu must be held.
func (d *Dashboard) queryLocked() (client.FoodQuery, bool) {
	if search := strings.TrimSpace(d.search); search != "" {
		return client.FoodQuery{Name: search}, true
	}
	if d.selected != nil {
		id := *d.selected
		return client.FoodQuery{CategoryID: &id}, true
	}
	return client.FoodQuery{}, false
}

// SelectCategory toggles the category filter and reloads the foods.
// Selecting the active category clears it; any other replaces it.
func (d *Dashboard) SelectCategory(ctx context.Context, id int) error {
	d.mu.Lock()
	if d.selected != nil && *d.selected == id {
		d.selected = nil
	} else {
		d.selected = &id
	}
	d.mu.Unlock()

	return d.LoadFoods(ctx)
}

// SetSearch stores the search text and reloads the foods.
func (d *Dashboard) SetSearch(ctx context.Context, text string) error {
	d.mu.Lock()
	d.search = text
	d.mu.Unlock()

	return d.LoadFoods(ctx)
}

// OpenFood navigates to the details of a food.
func (d *Dashboard) OpenFood(id int) {
	d.logger.Debug().Int("food_id", id).Msg("opening food details")
	d.nav.FoodDetails(id)
}

// SignOut navigates back to the home screen.
func (d *Dashboard) SignOut() {
	d.nav.Home()
}

// Categories returns a copy of the loaded categories.
func (d *Dashboard) Categories() []model.Category {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.Category{}, d.categories...)
}

// Foods returns a copy of the current food list.
func (d *Dashboard) Foods() []model.Food {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]model.Food{}, d.foods...)
}

// SelectedCategory returns the active category, if any.
func (d *Dashboard) SelectedCategory() (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.selected == nil {
		return 0, false
	}
	return *d.selected, true
}

// Search returns the current search text.
func (d *Dashboard) Search() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.search
}
