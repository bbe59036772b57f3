package ordering

import (
	"time"

	"github.com/shopeasy/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// OrderStatusPending is the status every new order is created with.
// No status transitions exist; orders are immutable after checkout.
const OrderStatusPending = "Pending"

// TimestampLayout is the layout used for the persisted date field
const TimestampLayout = "2006-01-02 15:04:05"

// ShippingDetails holds the customer-supplied checkout fields
type ShippingDetails struct {
	CustomerName string
	Email        string
	Address      string
	Phone        string
}

// Order is a persisted record of a completed checkout.
// Items is a snapshot of the cart at checkout time, not a product reference.
type Order struct {
	OrderID      int64           `json:"order_id"`
	UserID       int64           `json:"user_id"`
	CustomerName string          `json:"customer_name"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	Phone        string          `json:"phone"`
	Items        []CartItem      `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
}

// NewOrder creates an order from the cart's current contents.
// Fails with EMPTY_CART on an empty cart. The OrderID is assigned by the
// repository on save.
func NewOrder(userID int64, cart *Cart, shipping ShippingDetails) (*Order, error) {
	if cart == nil || cart.IsEmpty() {
		return nil, shared.ErrEmptyCart
	}

	return &Order{
		UserID:       userID,
		CustomerName: shipping.CustomerName,
		Email:        shipping.Email,
		Address:      shipping.Address,
		Phone:        shipping.Phone,
		Items:        cart.Snapshot(),
		Total:        cart.Subtotal(),
		Date:         time.Now().Format(TimestampLayout),
		Status:       OrderStatusPending,
	}, nil
}
