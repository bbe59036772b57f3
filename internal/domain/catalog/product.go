package catalog

import (
	"strings"

	"github.com/shopeasy/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// DefaultImage is used when a product is created or updated without an image URL.
const DefaultImage = "/static/images/default-product.jpg"

// Product represents a product in the catalog.
// Records are persisted as one object inside the products collection file.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

// NewProduct creates a new product. The ID is assigned by the repository on save.
func NewProduct(name, description string, price decimal.Decimal, quantity int, category, image string) (*Product, error) {
	p := &Product{
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		Category:    category,
		Image:       image,
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	if p.Image == "" {
		p.Image = DefaultImage
	}
	return p, nil
}

// Update replaces the product's mutable fields
func (p *Product) Update(name, description string, price decimal.Decimal, quantity int, category, image string) error {
	next := Product{
		ID:          p.ID,
		Name:        name,
		Description: description,
		Price:       price,
		Quantity:    quantity,
		Category:    category,
		Image:       image,
	}
	if err := next.validate(); err != nil {
		return err
	}
	if next.Image == "" {
		next.Image = DefaultImage
	}
	*p = next
	return nil
}

// LineTotal returns price multiplied by the given quantity
func (p *Product) LineTotal(quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}

func (p *Product) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "Product name is required")
	}
	if p.Price.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "Product price cannot be negative")
	}
	if p.Quantity < 0 {
		return shared.NewDomainError("INVALID_INPUT", "Product quantity cannot be negative")
	}
	return nil
}
