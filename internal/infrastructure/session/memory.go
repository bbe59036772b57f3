package session

import (
	"context"
	"sync"
	"time"

	"github.com/shopeasy/backend/internal/domain/ordering"
)

// cleanupInterval controls how often expired carts are swept
const cleanupInterval = 5 * time.Minute

type memoryEntry struct {
	cart      ordering.Cart
	expiresAt time.Time
}

// MemoryCartStore implements CartStore using an in-memory map.
// This is suitable for single-instance deployments and testing.
type MemoryCartStore struct {
	mu        sync.RWMutex
	entries   map[string]memoryEntry
	ttl       time.Duration
	stopChan  chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewMemoryCartStore creates an in-memory cart store.
// It starts a background goroutine that sweeps expired carts.
func NewMemoryCartStore(ttl time.Duration) *MemoryCartStore {
	store := &MemoryCartStore{
		entries:  make(map[string]memoryEntry),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}

	store.wg.Add(1)
	go store.cleanupLoop()

	return store
}

// Get returns the cart for the session, or a fresh empty cart when none exists
func (s *MemoryCartStore) Get(ctx context.Context, sessionID string) (*ordering.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, exists := s.entries[sessionID]
	if !exists || time.Now().After(e.expiresAt) {
		return ordering.NewCart(sessionID), nil
	}

	// Return a copy so callers cannot mutate stored state without Put
	cart := e.cart
	cart.Items = append([]ordering.CartItem(nil), e.cart.Items...)
	return &cart, nil
}

// Put stores the cart under its session ID, refreshing its TTL
func (s *MemoryCartStore) Put(ctx context.Context, cart *ordering.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *cart
	stored.Items = append([]ordering.CartItem(nil), cart.Items...)
	s.entries[cart.SessionID] = memoryEntry{
		cart:      stored,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Delete discards the cart for the session
func (s *MemoryCartStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, sessionID)
	return nil
}

// Close stops the cleanup goroutine. Safe to call multiple times.
func (s *MemoryCartStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopChan)
		s.wg.Wait()
	})
	return nil
}

func (s *MemoryCartStore) cleanupLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.removeExpired()
		case <-s.stopChan:
			return
		}
	}
}

func (s *MemoryCartStore) removeExpired() {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
