package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	appordering "github.com/shopeasy/backend/internal/application/ordering"
	"github.com/shopeasy/backend/internal/domain/catalog"
	"github.com/shopeasy/backend/internal/infrastructure/persistence"
	"github.com/shopeasy/backend/internal/infrastructure/session"
	"github.com/shopeasy/backend/internal/interfaces/http/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newCartRouter(t *testing.T) *gin.Engine {
	t.Helper()
	repo, err := persistence.NewFileProductRepository(t.TempDir())
	require.NoError(t, err)

	headphones, err := catalog.NewProduct("Wireless Headphones", "Noise cancelling",
		decimal.RequireFromString("99.99"), 50, "Electronics", "")
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), headphones))

	store := session.NewMemoryCartStore(time.Hour)
	t.Cleanup(func() { store.Close() })

	router := gin.New()
	router.Use(middleware.CartSession())
	api := router.Group("/api/v1")
	NewCartHandler(appordering.NewCartService(repo, store, zap.NewNop())).RegisterRoutes(api)
	return router
}

func doCart(t *testing.T, router *gin.Engine, method, path, body, sessionID string) *httptest.ResponseRecorder {
	t.Helper()
	headers := map[string]string{}
	if sessionID != "" {
		headers[middleware.CartSessionHeader] = sessionID
	}
	return doRequest(t, router, method, path, body, headers)
}

func TestCartHandler(t *testing.T) {
	router := newCartRouter(t)

	t.Run("fresh session views an empty cart", func(t *testing.T) {
		w := doCart(t, router, http.MethodGet, "/api/v1/cart", "", "sess-1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
		assert.Contains(t, w.Body.String(), `"total":0`)
	})

	t.Run("add puts one unit in the cart", func(t *testing.T) {
		w := doCart(t, router, http.MethodPost, "/api/v1/cart/items/1", "", "sess-1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"quantity":1`)
		assert.Contains(t, w.Body.String(), `"total":99.99`)
	})

	t.Run("adding again merges the line", func(t *testing.T) {
		w := doCart(t, router, http.MethodPost, "/api/v1/cart/items/1", "", "sess-1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"quantity":2`)
		assert.Contains(t, w.Body.String(), `"total":199.98`)
	})

	t.Run("adding an unknown product returns the cart unchanged", func(t *testing.T) {
		w := doCart(t, router, http.MethodPost, "/api/v1/cart/items/99", "", "sess-1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"quantity":2`)
		assert.Contains(t, w.Body.String(), `"total":199.98`)
		assert.NotContains(t, w.Body.String(), "ERR_NOT_FOUND")
	})

	t.Run("unknown product on a fresh session yields an empty cart", func(t *testing.T) {
		w := doCart(t, router, http.MethodPost, "/api/v1/cart/items/999", "", "sess-fresh")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
	})

	t.Run("another session sees its own empty cart", func(t *testing.T) {
		w := doCart(t, router, http.MethodGet, "/api/v1/cart", "", "sess-2")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
	})

	t.Run("quantity can be updated", func(t *testing.T) {
		w := doCart(t, router, http.MethodPut, "/api/v1/cart/items/1", `{"quantity":5}`, "sess-1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"quantity":5`)
		assert.Contains(t, w.Body.String(), `"total":499.95`)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		w := doCart(t, router, http.MethodPut, "/api/v1/cart/items/1", `{"quantity":0}`, "sess-1")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"items":[]`)
	})

	t.Run("remove and clear are idempotent", func(t *testing.T) {
		w := doCart(t, router, http.MethodDelete, "/api/v1/cart/items/1", "", "sess-1")
		assert.Equal(t, http.StatusOK, w.Code)

		w = doCart(t, router, http.MethodDelete, "/api/v1/cart", "", "sess-1")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}
