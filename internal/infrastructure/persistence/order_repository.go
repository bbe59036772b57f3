package persistence

import (
	"context"

	"github.com/shopeasy/backend/internal/domain/ordering"
)

// FileOrderRepository is a flat-file implementation of ordering.OrderRepository
type FileOrderRepository struct {
	col *Collection[ordering.Order]
	seq *sequence
}

// NewFileOrderRepository opens the orders collection under dir
func NewFileOrderRepository(dir string) (*FileOrderRepository, error) {
	col, err := OpenCollection[ordering.Order](dir, OrdersFile)
	if err != nil {
		return nil, err
	}

	orders, err := col.ReadAll()
	if err != nil {
		return nil, err
	}
	var maxID int64
	for _, o := range orders {
		if o.OrderID > maxID {
			maxID = o.OrderID
		}
	}

	return &FileOrderRepository{col: col, seq: newSequence(maxID)}, nil
}

// FindAll returns every order in creation order
func (r *FileOrderRepository) FindAll(ctx context.Context) ([]ordering.Order, error) {
	return r.col.ReadAll()
}

// FindByUser returns the orders placed by the given user
func (r *FileOrderRepository) FindByUser(ctx context.Context, userID int64) ([]ordering.Order, error) {
	orders, err := r.col.ReadAll()
	if err != nil {
		return nil, err
	}
	matched := []ordering.Order{}
	for _, o := range orders {
		if o.UserID == userID {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

// Save persists a new order, assigning its OrderID
func (r *FileOrderRepository) Save(ctx context.Context, order *ordering.Order) error {
	return r.col.Update(func(orders []ordering.Order) ([]ordering.Order, error) {
		order.OrderID = r.seq.Next()
		return append(orders, *order), nil
	})
}
