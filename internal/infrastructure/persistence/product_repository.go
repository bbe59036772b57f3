package persistence

import (
	"context"

	"github.com/shopeasy/backend/internal/domain/catalog"
	"github.com/shopeasy/backend/internal/domain/shared"
)

// FileProductRepository is a flat-file implementation of catalog.ProductRepository
type FileProductRepository struct {
	col *Collection[catalog.Product]
	seq *sequence
}

// NewFileProductRepository opens the products collection under dir
func NewFileProductRepository(dir string) (*FileProductRepository, error) {
	col, err := OpenCollection[catalog.Product](dir, ProductsFile)
	if err != nil {
		return nil, err
	}

	products, err := col.ReadAll()
	if err != nil {
		return nil, err
	}
	var maxID int64
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	return &FileProductRepository{col: col, seq: newSequence(maxID)}, nil
}

// FindAll returns every product in catalog order
func (r *FileProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	return r.col.ReadAll()
}

// FindByID finds a product by its ID
func (r *FileProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	products, err := r.col.ReadAll()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}
	return nil, shared.ErrNotFound
}

// Save persists a new product, assigning its ID
func (r *FileProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.col.Update(func(products []catalog.Product) ([]catalog.Product, error) {
		product.ID = r.seq.Next()
		return append(products, *product), nil
	})
}

// Update persists changes to an existing product
func (r *FileProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	return r.col.Update(func(products []catalog.Product) ([]catalog.Product, error) {
		for i := range products {
			if products[i].ID == product.ID {
				products[i] = *product
				return products, nil
			}
		}
		return nil, shared.ErrNotFound
	})
}

// Reset replaces the whole catalog with the given products, numbering
// them from 1. The overwrite discards every prior record, so restarting
// the id sequence cannot collide. Used by the seeding tool.
func (r *FileProductRepository) Reset(ctx context.Context, products []catalog.Product) error {
	return r.col.Update(func([]catalog.Product) ([]catalog.Product, error) {
		r.seq.Rewind()
		seeded := make([]catalog.Product, len(products))
		for i := range products {
			seeded[i] = products[i]
			seeded[i].ID = r.seq.Next()
		}
		return seeded, nil
	})
}

// Delete removes a product by ID. Deleting an absent ID is a no-op.
func (r *FileProductRepository) Delete(ctx context.Context, id int64) error {
	return r.col.Update(func(products []catalog.Product) ([]catalog.Product, error) {
		kept := products[:0]
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return kept, nil
	})
}
