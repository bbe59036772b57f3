package catalog

import "context"

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindAll returns every product in catalog order
	FindAll(ctx context.Context) ([]Product, error)

	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// Save persists a new product, assigning its ID
	Save(ctx context.Context, product *Product) error

	// Update persists changes to an existing product
	Update(ctx context.Context, product *Product) error

	// Delete removes a product by ID. Deleting an absent ID is a no-op.
	Delete(ctx context.Context, id int64) error
}
