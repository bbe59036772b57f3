package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopeasy/backend/internal/domain/ordering"
	"github.com/shopeasy/backend/internal/infrastructure/config"
)

const redisKeyPrefix = "cart:session:"

// RedisCartStore implements CartStore using Redis.
// This is suitable for deployments where carts must survive a process
// restart or be shared between instances.
type RedisCartStore struct {
	client    *redis.Client
	ttl       time.Duration
	keyPrefix string
}

// NewRedisCartStore creates a Redis-backed cart store and verifies the connection
func NewRedisCartStore(cfg config.SessionConfig) (*RedisCartStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCartStore{
		client:    client,
		ttl:       cfg.TTL,
		keyPrefix: redisKeyPrefix,
	}, nil
}

// NewRedisCartStoreWithClient creates a store with an existing Redis client.
// This is useful for testing or when sharing a client across components.
func NewRedisCartStoreWithClient(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{
		client:    client,
		ttl:       ttl,
		keyPrefix: redisKeyPrefix,
	}
}

// Get returns the cart for the session, or a fresh empty cart when none exists
func (s *RedisCartStore) Get(ctx context.Context, sessionID string) (*ordering.Cart, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return ordering.NewCart(sessionID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart session: %w", err)
	}

	var cart ordering.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("failed to decode cart session: %w", err)
	}
	if cart.Items == nil {
		cart.Items = []ordering.CartItem{}
	}
	return &cart, nil
}

// Put stores the cart under its session ID, refreshing its TTL
func (s *RedisCartStore) Put(ctx context.Context, cart *ordering.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart session: %w", err)
	}

	if err := s.client.Set(ctx, s.keyPrefix+cart.SessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store cart session: %w", err)
	}
	return nil
}

// Delete discards the cart for the session
func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.keyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete cart session: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client
func (s *RedisCartStore) Close() error {
	return s.client.Close()
}
