package handler

import (
	"net/http"
	"strconv"

	"gorestaurant/internal/model"
	"gorestaurant/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Query parameters accepted by GET /foods.
const (
	ParamCategoryLike = "category_like"
	ParamNameLike     = "name_like"
)

// FoodHandler handles food-related HTTP requests.
type FoodHandler struct {
	service service.FoodService
	logger  zerolog.Logger
}

// NewFoodHandler creates a new food handler.
func NewFoodHandler(service service.FoodService, logger zerolog.Logger) *FoodHandler {
	return &FoodHandler{
		service: service,
		logger:  logger.With().Str("handler", "food").Logger(),
	}
}

// List handles GET /foods requests with optional category_like and name_like filters.
func (h *FoodHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter model.FoodFilter

	if raw := query.Get(ParamCategoryLike); raw != "" {
		categoryID, err := strconv.Atoi(raw)
		if err != nil {
			writeServiceError(w, r, model.ErrInvalidCategory, "", h.logger)
			return
		}
		filter.CategoryID = &categoryID
	}
	filter.Name = query.Get(ParamNameLike)

	foods, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve foods", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, foods)
}

// GetByID handles GET /foods/{id} requests.
func (h *FoodHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	foodID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, model.ErrInvalidFoodID, "", h.logger)
		return
	}

	food, err := h.service.GetByID(r.Context(), foodID)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve food", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, food)
}
