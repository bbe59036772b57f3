package catalog

import (
	"github.com/shopeasy/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Price       decimal.Decimal `json:"price" binding:"min=0"`
	Quantity    int             `json:"quantity" binding:"min=0"`
	Category    string          `json:"category" binding:"max=100"`
	Image       string          `json:"image" binding:"max=500"`
}

// UpdateProductRequest represents a request to edit an existing product.
// All fields are submitted together, mirroring the edit form of the storefront.
type UpdateProductRequest struct {
	Name        string          `json:"name" binding:"required,min=1,max=200"`
	Description string          `json:"description" binding:"max=2000"`
	Price       decimal.Decimal `json:"price" binding:"min=0"`
	Quantity    int             `json:"quantity" binding:"min=0"`
	Category    string          `json:"category" binding:"max=100"`
	Image       string          `json:"image" binding:"max=500"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Category:    p.Category,
		Image:       p.Image,
	}
}

// ToProductResponses converts a slice of domain Products
func ToProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i := range products {
		responses[i] = ToProductResponse(&products[i])
	}
	return responses
}
