package ordering

import (
	"github.com/shopeasy/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CartItem is one product-and-quantity line inside a cart or order snapshot.
// The item carries a copy of the product fields taken at add time, not a reference.
type CartItem struct {
	ProductID int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
}

// LineTotal returns price multiplied by quantity for this line
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart holds the in-progress line items for one shopping session.
// It is a plain value addressed by its session identifier; all mutation
// happens through the methods below and is persisted by a session store.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
}

// NewCart creates an empty cart for the given session
func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Items: []CartItem{}}
}

// AddProduct adds one unit of the product to the cart.
// An existing line for the same product has its quantity incremented.
func (c *Cart) AddProduct(product *catalog.Product) {
	for i := range c.Items {
		if c.Items[i].ProductID == product.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  1,
		Image:     product.Image,
	})
}

// SetQuantity sets the quantity of a line item.
// A quantity of zero or less removes the line. Unknown product IDs are ignored.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}
		if quantity > 0 {
			c.Items[i].Quantity = quantity
		} else {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		}
		return
	}
}

// RemoveProduct removes the line item for the given product ID, if present
func (c *Cart) RemoveProduct(productID int64) {
	c.SetQuantity(productID, 0)
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// IsEmpty reports whether the cart has no line items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal returns the sum of price multiplied by quantity over all lines
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Snapshot returns a copy of the line items, detached from the cart
func (c *Cart) Snapshot() []CartItem {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return items
}
