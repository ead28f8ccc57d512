// Package client is the HTTP client for the catalog API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"gorestaurant/internal/model"

	"github.com/rs/zerolog"
)

// Query parameters understood by GET /foods.
const (
	ParamCategoryLike = "category_like"
	ParamNameLike     = "name_like"
)

// FoodQuery selects which foods to request. The zero value lists every food.
type FoodQuery struct {
	CategoryID *int
	Name       string
}

// Values encodes the query for the request URL.
func (q FoodQuery) Values() url.Values {
	v := url.Values{}
	if q.CategoryID != nil {
		v.Set(ParamCategoryLike, strconv.Itoa(*q.CategoryID))
	}
	if q.Name != "" {
		v.Set(ParamNameLike, q.Name)
	}
	return v
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	StatusCode int
	Body       model.ErrorResponse
}

func (e *StatusError) Error() string {
	if e.Body.Error != "" {
		return fmt.Sprintf("catalog API returned %d %s: %s", e.StatusCode, e.Body.Error, e.Body.Message)
	}
	return fmt.Sprintf("catalog API returned %d", e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

// Client calls the catalog API at a fixed base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a client. Every request is bounded by timeout.
func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With().Str("component", "api-client").Logger(),
	}
}

// Categories fetches GET /categories.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := c.get(ctx, "/categories", nil, &categories); err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// Foods fetches GET /foods with the query's filters.
func (c *Client) Foods(ctx context.Context, query FoodQuery) ([]model.Food, error) {
	var foods []model.Food
	if err := c.get(ctx, "/foods", query.Values(), &foods); err != nil {
		return nil, fmt.Errorf("failed to fetch foods: %w", err)
	}
	return foods, nil
}

// Food fetches GET /foods/{id}.
func (c *Client) Food(ctx context.Context, id int) (*model.Food, error) {
	var food model.Food
	if err := c.get(ctx, "/foods/"+strconv.Itoa(id), nil, &food); err != nil {
		return nil, fmt.Errorf("failed to fetch food %d: %w", id, err)
	}
	return &food, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", endpoint).Msg("request failed")
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		// Best effort: the body may not be JSON when a proxy answers.
		_ = json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&statusErr.Body)
		return statusErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}
	return nil
}
