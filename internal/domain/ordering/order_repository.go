package ordering

import "context"

// OrderRepository defines the interface for order persistence
type OrderRepository interface {
	// FindAll returns every order in creation order
	FindAll(ctx context.Context) ([]Order, error)

	// FindByUser returns the orders placed by the given user
	FindByUser(ctx context.Context, userID int64) ([]Order, error)

	// Save persists a new order, assigning its OrderID
	Save(ctx context.Context, order *Order) error
}
