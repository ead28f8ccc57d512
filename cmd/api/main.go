package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorestaurant/internal/config"
	"gorestaurant/internal/database"
	"gorestaurant/internal/handler"
	"gorestaurant/internal/middleware"
	"gorestaurant/internal/repository"
	"gorestaurant/internal/router"
	"gorestaurant/internal/seed"
	"gorestaurant/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, os.Stdout)
	logger.Info().Msg("starting gorestaurant catalog API")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	categoryRepo := repository.NewCategoryRepository(pool, logger)
	foodRepo := repository.NewFoodRepository(pool, logger)

	if cfg.Seed.Enabled {
		if err := seedCatalog(ctx, cfg, categoryRepo, foodRepo, logger); err != nil {
			return err
		}
	}

	categoryService := service.NewCategoryService(categoryRepo, logger)
	foodService := service.NewFoodService(foodRepo, logger)

	categoryHandler := handler.NewCategoryHandler(categoryService, logger)
	foodHandler := handler.NewFoodHandler(foodService, logger)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, 10*time.Minute)
		go limiter.Run(ctx, time.Minute)
	} else {
		logger.Info().Msg("rate limiting disabled")
	}

	mux := router.New(categoryHandler, foodHandler, limiter, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// seedCatalog loads the catalog document, from S3 when enabled with the local
// file as fallback, and upserts it.
func seedCatalog(
	ctx context.Context,
	cfg *config.Config,
	categoryRepo repository.CategoryRepository,
	foodRepo repository.FoodRepository,
	logger zerolog.Logger,
) error {
	fileLoader := seed.NewFileLoader(logger)

	var s3Loader seed.Loader
	if cfg.S3.Enabled {
		l, err := seed.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			s3Loader = l
		}
	} else {
		logger.Info().Msg("using local file system for catalog (S3 disabled)")
	}

	loader := seed.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, cfg.S3.Enabled, logger)

	catalog, err := loader.Load(ctx, cfg.Seed.Path)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	if err := seed.NewSeeder(categoryRepo, foodRepo, logger).Seed(ctx, catalog); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	return nil
}
