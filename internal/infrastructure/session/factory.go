package session

import (
	"fmt"

	"github.com/shopeasy/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewCartStore creates the cart store selected by configuration.
// The "redis" backend falls back to the in-memory store when Redis is
// unreachable, so a missing Redis never blocks local development.
func NewCartStore(cfg config.SessionConfig, logger *zap.Logger) (CartStore, error) {
	switch cfg.Backend {
	case "memory":
		return NewMemoryCartStore(cfg.TTL), nil
	case "redis":
		store, err := NewRedisCartStore(cfg)
		if err != nil {
			logger.Warn("Redis session backend unavailable, falling back to in-memory carts",
				zap.String("addr", cfg.RedisAddr()),
				zap.Error(err))
			return NewMemoryCartStore(cfg.TTL), nil
		}
		logger.Info("Using Redis cart session store", zap.String("addr", cfg.RedisAddr()))
		return store, nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Backend)
	}
}
