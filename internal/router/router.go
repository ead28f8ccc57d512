package router

import (
	"net/http"
	"time"

	"gorestaurant/internal/handler"
	"gorestaurant/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
// A nil limiter disables rate limiting.
func New(
	categoryHandler *handler.CategoryHandler,
	foodHandler *handler.FoodHandler,
	limiter *middleware.RateLimiter,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Order: Recovery -> RequestID -> Logging -> CORS -> RateLimit
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS())
	r.Use(chimiddleware.Timeout(30 * time.Second))
	if limiter != nil {
		r.Use(middleware.RateLimit(limiter, logger))
	}

	r.NotFound(handler.NotFound(logger))
	r.MethodNotAllowed(handler.MethodNotAllowed(logger))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	r.Get("/categories", categoryHandler.List)
	r.Get("/foods", foodHandler.List)
	r.Get("/foods/{id}", foodHandler.GetByID)

	return r
}
