package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gorestaurant/internal/client"
	"gorestaurant/internal/config"
	"gorestaurant/internal/currency"
	"gorestaurant/internal/dashboard"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	flags := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	baseURL := flags.String("api", cfg.Client.BaseURL, "catalog API base URL")
	category := flags.Int("category", 0, "select this category id after mount")
	search := flags.String("search", "", "search foods by name")
	open := flags.Int("open", 0, "open the details of this food id")
	timeout := flags.Duration("timeout", cfg.Client.Timeout, "per-request timeout")
	if err := flags.Parse(args); err != nil {
		return err
	}

	logger := config.NewLogger(cfg.Logger, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := client.New(*baseURL, *timeout, logger)
	nav := &terminalNavigator{ctx: ctx, api: api, out: out, logger: logger}
	screen := dashboard.New(api, nav, logger)

	if err := screen.Mount(ctx); err != nil {
		return err
	}

	if *category != 0 {
		if err := screen.SelectCategory(ctx, *category); err != nil {
			return err
		}
	}

	if *search != "" {
		if err := screen.SetSearch(ctx, *search); err != nil {
			return err
		}
	}

	if err := dashboard.Render(out, screen.View()); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}

	if *open != 0 {
		screen.OpenFood(*open)
		return nav.err
	}

	return nil
}

// terminalNavigator prints the screen a navigation leads to.
type terminalNavigator struct {
	ctx    context.Context
	api    *client.Client
	out    io.Writer
	logger zerolog.Logger
	err    error
}

// FoodDetails fetches and prints a food with its extras.
func (n *terminalNavigator) FoodDetails(id int) {
	n.logger.Info().Int("food_id", id).Msg("navigate: FoodDetails")

	food, err := n.api.Food(n.ctx, id)
	if err != nil {
		n.err = err
		return
	}

	fmt.Fprintf(n.out, "\n%s  %s\n  %s\n", food.Name, currency.Format(food.Price), food.Description)
	for _, extra := range food.Extras {
		fmt.Fprintf(n.out, "  + %s  %s\n", extra.Name, currency.Format(extra.Value))
	}
}

// Home has no terminal rendition.
func (n *terminalNavigator) Home() {
	n.logger.Info().Msg("navigate: Home")
}
