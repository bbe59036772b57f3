package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	appcatalog "github.com/shopeasy/backend/internal/application/catalog"
	"github.com/shopeasy/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newProductRouter(t *testing.T) *gin.Engine {
	t.Helper()
	repo, err := persistence.NewFileProductRepository(t.TempDir())
	require.NoError(t, err)

	router := gin.New()
	api := router.Group("/api/v1")
	NewProductHandler(appcatalog.NewProductService(repo, zap.NewNop())).RegisterRoutes(api)
	return router
}

func TestProductHandlerCRUD(t *testing.T) {
	router := newProductRouter(t)

	t.Run("empty catalog lists zero products", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/catalog/products", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":0`)
	})

	t.Run("create returns 201 with assigned id", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/catalog/products",
			`{"name":"Wireless Headphones","description":"Noise cancelling","price":99.99,"quantity":50,"category":"Electronics"}`)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":1`)
		assert.Contains(t, w.Body.String(), `"price":99.99`)
	})

	t.Run("get returns the product", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/catalog/products/1", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Wireless Headphones")
	})

	t.Run("update replaces the fields", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/catalog/products/1",
			`{"name":"Wireless Headphones v2","description":"Noise cancelling","price":89.99,"quantity":40,"category":"Electronics"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Wireless Headphones v2")
		assert.Contains(t, w.Body.String(), `"price":89.99`)
	})

	t.Run("delete removes the product", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/api/v1/catalog/products/1", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, router, http.MethodGet, "/api/v1/catalog/products/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductHandlerValidation(t *testing.T) {
	router := newProductRouter(t)

	t.Run("missing name is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/catalog/products",
			`{"price":9.99,"quantity":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/api/v1/catalog/products",
			`{"name":"Broken","price":-1,"quantity":1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/catalog/products/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("update of unknown product is 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/catalog/products/99",
			`{"name":"Ghost","price":1,"quantity":1}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_NOT_FOUND")
	})
}
