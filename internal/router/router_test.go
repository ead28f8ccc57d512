package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gorestaurant/internal/handler"
	"gorestaurant/internal/middleware"
	"gorestaurant/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

type stubCategoryService struct{}

func (stubCategoryService) List(ctx context.Context) ([]model.Category, error) {
	return []model.Category{{ID: 1, Title: "Massas"}}, nil
}

type stubFoodService struct{}

func (stubFoodService) List(ctx context.Context, filter model.FoodFilter) ([]model.Food, error) {
	return []model.Food{}, nil
}

func (stubFoodService) GetByID(ctx context.Context, id int) (*model.Food, error) {
	return nil, model.ErrFoodNotFound
}

func newTestRouter(limiter *middleware.RateLimiter) http.Handler {
	logger := zerolog.Nop()
	return New(
		handler.NewCategoryHandler(stubCategoryService{}, logger),
		handler.NewFoodHandler(stubFoodService{}, logger),
		limiter,
		logger,
	)
}

func TestRouter_Routes(t *testing.T) {
	router := newTestRouter(nil)

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		bodyContains   string
	}{
		{"Health", http.MethodGet, "/health", http.StatusOK, "healthy"},
		{"Categories", http.MethodGet, "/categories", http.StatusOK, "Massas"},
		{"Foods", http.MethodGet, "/foods?name_like=x", http.StatusOK, "[]"},
		{"Food by ID not found", http.MethodGet, "/foods/7", http.StatusNotFound, model.ErrCodeFoodNotFound},
		{"Unknown route", http.MethodGet, "/orders", http.StatusNotFound, model.ErrCodeNotFound},
		{"Wrong method", http.MethodPost, "/foods", http.StatusMethodNotAllowed, model.ErrCodeMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.bodyContains)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_RateLimit(t *testing.T) {
	router := newTestRouter(middleware.NewRateLimiter(0.001, 1, time.Minute))

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/categories", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	router.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/categories", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}
