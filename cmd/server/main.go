package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/shopeasy/backend/internal/application/catalog"
	identityapp "github.com/shopeasy/backend/internal/application/identity"
	orderingapp "github.com/shopeasy/backend/internal/application/ordering"
	"github.com/shopeasy/backend/internal/infrastructure/auth"
	"github.com/shopeasy/backend/internal/infrastructure/config"
	"github.com/shopeasy/backend/internal/infrastructure/logger"
	"github.com/shopeasy/backend/internal/infrastructure/persistence"
	"github.com/shopeasy/backend/internal/infrastructure/session"
	"github.com/shopeasy/backend/internal/interfaces/http/handler"
	"github.com/shopeasy/backend/internal/interfaces/http/middleware"
	"github.com/shopeasy/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting ShopEasy Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Open the JSON-file collections
	productRepo, err := persistence.NewFileProductRepository(cfg.Store.Dir)
	if err != nil {
		log.Fatal("Failed to open product collection", zap.Error(err))
	}
	userRepo, err := persistence.NewFileUserRepository(cfg.Store.Dir)
	if err != nil {
		log.Fatal("Failed to open user collection", zap.Error(err))
	}
	orderRepo, err := persistence.NewFileOrderRepository(cfg.Store.Dir)
	if err != nil {
		log.Fatal("Failed to open order collection", zap.Error(err))
	}

	// Cart session store (memory or redis per config)
	cartStore, err := session.NewCartStore(cfg.Session, log)
	if err != nil {
		log.Fatal("Failed to initialize cart store", zap.Error(err))
	}
	defer func() {
		_ = cartStore.Close()
	}()

	// JWT authentication
	jwtService := auth.NewJWTService(cfg.JWT)

	// Application services
	productService := catalogapp.NewProductService(productRepo, log)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)
	cartService := orderingapp.NewCartService(productRepo, cartStore, log)
	checkoutService := orderingapp.NewCheckoutService(orderRepo, cartStore, log)

	// Gin engine
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Fatal("Failed to set trusted proxies", zap.Error(err))
		}
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins

	engine.Use(middleware.RequestID())
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))
	engine.Use(middleware.CORSWithConfig(corsConfig))
	engine.Use(middleware.CartSession())
	engine.Use(middleware.JWTAuthMiddleware(jwtService))

	engine.GET("/health", healthHandler(cfg))
	engine.GET("/api/v1/health", healthHandler(cfg))

	// Routes
	router.NewRouter(engine).
		Register(handler.NewProductHandler(productService)).
		Register(handler.NewAuthHandler(authService)).
		Register(handler.NewCartHandler(cartService)).
		Register(handler.NewOrderHandler(checkoutService)).
		Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports process liveness
func healthHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"app":    cfg.App.Name,
			"env":    cfg.App.Env,
		})
	}
}
