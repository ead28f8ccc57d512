package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"gorestaurant/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int {
	return &i
}

type recordedRequest struct {
	path   string
	query  url.Values
	accept string
}

// newTestServer returns a client for a server that records the last request and replies via handler.
func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *recordedRequest) {
	last := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		last.path = r.URL.Path
		last.query = r.URL.Query()
		last.accept = r.Header.Get("Accept")
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	return New(server.URL+"/", 5*time.Second, zerolog.Nop()), last
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func TestFoodQuery_Values(t *testing.T) {
	tests := []struct {
		name     string
		query    FoodQuery
		expected string
	}{
		{name: "Empty", query: FoodQuery{}, expected: ""},
		{name: "Category", query: FoodQuery{CategoryID: intPtr(2)}, expected: "category_like=2"},
		{name: "Name is escaped", query: FoodQuery{Name: "a la camarón"}, expected: "name_like=a+la+camar%C3%B3n"},
		{name: "Both", query: FoodQuery{CategoryID: intPtr(1), Name: "molho"}, expected: "category_like=1&name_like=molho"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.query.Values().Encode())
		})
	}
}

func TestClient_Categories(t *testing.T) {
	categories := []model.Category{
		{ID: 2, Title: "Pizzas", ImageURL: "https://example.com/pizzas.png"},
		{ID: 1, Title: "Massas", ImageURL: "https://example.com/massas.png"},
	}
	c, last := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, categories)
	})

	got, err := c.Categories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, categories, got)
	assert.Equal(t, "/categories", last.path)
	assert.Equal(t, "application/json", last.accept)
}

func TestClient_Foods(t *testing.T) {
	foods := []model.Food{
		{ID: 2, Name: "Veggie", Category: 2, Price: 21.9, Extras: []model.Extra{{ID: 3, Name: "Bacon", Value: 1.5}}},
	}
	c, last := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, foods)
	})

	got, err := c.Foods(context.Background(), FoodQuery{CategoryID: intPtr(2)})

	require.NoError(t, err)
	assert.Equal(t, foods, got)
	assert.Equal(t, "/foods", last.path)
	assert.Equal(t, "2", last.query.Get(ParamCategoryLike))
	assert.False(t, last.query.Has(ParamNameLike))
}

func TestClient_Food(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		c, last := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, model.Food{ID: 3, Name: "A la Camarón", Price: 25.9})
		})

		food, err := c.Food(context.Background(), 3)

		require.NoError(t, err)
		assert.Equal(t, "A la Camarón", food.Name)
		assert.Equal(t, "/foods/3", last.path)
	})

	t.Run("Not found", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusNotFound, model.ErrorResponse{
				Error:   model.ErrCodeFoodNotFound,
				Message: "food not found",
			})
		})

		food, err := c.Food(context.Background(), 99)

		require.Error(t, err)
		assert.Nil(t, food)
		assert.True(t, IsNotFound(err))

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, model.ErrCodeFoodNotFound, statusErr.Body.Error)
		assert.Contains(t, err.Error(), "food not found")
	})
}

func TestClient_Errors(t *testing.T) {
	t.Run("Non-JSON error body", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad gateway", http.StatusBadGateway)
		})

		_, err := c.Categories(context.Background())

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusBadGateway, statusErr.StatusCode)
		assert.False(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "catalog API returned 502")
	})

	t.Run("Malformed payload", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id": 1}`))
		})

		_, err := c.Foods(context.Background(), FoodQuery{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode response")
	})

	t.Run("Cancelled context", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, []model.Category{})
		})
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := c.Categories(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Server down", func(t *testing.T) {
		c := New("http://127.0.0.1:1", time.Second, zerolog.Nop())

		_, err := c.Categories(context.Background())

		assert.Error(t, err)
	})
}
