package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopeasy/backend/internal/infrastructure/auth"
	"github.com/shopeasy/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTService(expiration time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret",
		Issuer:                "shopeasy-test",
		AccessTokenExpiration: expiration,
	})
}

func newAuthRouter(svc *auth.JWTService) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuthMiddleware(svc))
	router.GET("/api/v1/auth/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetJWTUserID(c)})
	})
	router.GET("/api/v1/catalog/products", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.POST("/api/v1/catalog/products", func(c *gin.Context) { c.Status(http.StatusCreated) })
	router.GET("/api/v1/cart", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func TestJWTAuthMiddleware(t *testing.T) {
	svc := newJWTService(time.Hour)
	router := newAuthRouter(svc)

	do := func(method, path, authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token passes", func(t *testing.T) {
		token, err := svc.GenerateToken(7, "alice@example.com", "Alice")
		require.NoError(t, err)

		w := do(http.MethodGet, "/api/v1/auth/me", "Bearer "+token.Token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":7`)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w := do(http.MethodGet, "/api/v1/auth/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		w := do(http.MethodGet, "/api/v1/auth/me", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token reports ERR_TOKEN_EXPIRED", func(t *testing.T) {
		expired := newJWTService(-time.Minute)
		token, err := expired.GenerateToken(7, "alice@example.com", "Alice")
		require.NoError(t, err)

		w := do(http.MethodGet, "/api/v1/auth/me", "Bearer "+token.Token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_TOKEN_EXPIRED")
	})

	t.Run("health and catalog reads skip auth", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/health", "").Code)
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/catalog/products", "").Code)
	})

	t.Run("catalog writes require auth", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/catalog/products", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("cart routes skip auth", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/cart", "").Code)
	})
}
