// Package session holds the in-progress shopping carts.
//
// A cart is addressed by an opaque session identifier minted by the HTTP
// layer. The store keeps cart state out of process globals so workflows
// receive and return explicit cart values.
package session

import (
	"context"

	"github.com/shopeasy/backend/internal/domain/ordering"
)

// CartStore persists carts between requests of one shopping session
type CartStore interface {
	// Get returns the cart for the session, or a fresh empty cart when none exists
	Get(ctx context.Context, sessionID string) (*ordering.Cart, error)

	// Put stores the cart under its session ID, refreshing its TTL
	Put(ctx context.Context, cart *ordering.Cart) error

	// Delete discards the cart for the session
	Delete(ctx context.Context, sessionID string) error

	// Close releases store resources
	Close() error
}
