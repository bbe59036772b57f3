package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupEngine(core zapcore.Core) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(GinMiddleware(zap.New(core)))
	return engine
}

func TestGinMiddlewareLogsRequest(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	engine := setupEngine(core)
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping?verbose=1", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	entries := recorded.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/ping", fields["path"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, "verbose=1", fields["query"])
}

func TestGinMiddlewareLogsErrorsAtWarn(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	engine := setupEngine(core)
	engine.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	entries := recorded.FilterMessage("HTTP Request").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}

func TestGetGinLoggerInsideHandler(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	engine := setupEngine(core)

	var handlerLogger *zap.Logger
	engine.GET("/x", func(c *gin.Context) {
		handlerLogger = GetGinLogger(c)
		c.Status(http.StatusOK)
	})

	engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.NotNil(t, handlerLogger)
}

func TestGetGinLoggerWithoutMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	log := GetGinLogger(c)
	assert.NotNil(t, log, "falls back to a nop logger")
}

func TestRecoveryMiddleware(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Recovery(zap.New(core)))
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	entries := recorded.FilterMessage("Panic recovered").All()
	require.Len(t, entries, 1)
}
