package ordering

import (
	"github.com/shopeasy/backend/internal/domain/ordering"
	"github.com/shopspring/decimal"
)

// CartItemView represents one cart line in responses
type CartItemView struct {
	ProductID int64           `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartView represents the full cart in responses
type CartView struct {
	SessionID string          `json:"session_id"`
	Items     []CartItemView  `json:"items"`
	Total     decimal.Decimal `json:"total"`
}

// UpdateQuantityInput carries the new quantity for a cart line.
// Zero is a valid quantity and removes the line, so the field carries
// no required rule.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// CheckoutInput carries the shipping details submitted at checkout
type CheckoutInput struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Address      string `json:"address" binding:"required"`
	Phone        string `json:"phone" binding:"required"`
}

// OrderResponse represents a persisted order in responses
type OrderResponse struct {
	OrderID      int64               `json:"order_id"`
	CustomerName string              `json:"customer_name"`
	Email        string              `json:"email"`
	Address      string              `json:"address"`
	Phone        string              `json:"phone"`
	Items        []ordering.CartItem `json:"items"`
	Total        decimal.Decimal     `json:"total"`
	Date         string              `json:"date"`
	Status       string              `json:"status"`
}

// ToCartView converts a domain cart to its response form
func ToCartView(cart *ordering.Cart) CartView {
	items := make([]CartItemView, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, CartItemView{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			LineTotal: item.LineTotal(),
		})
	}
	return CartView{
		SessionID: cart.SessionID,
		Items:     items,
		Total:     cart.Subtotal(),
	}
}

// ToOrderResponse converts a domain order to its response form
func ToOrderResponse(order *ordering.Order) OrderResponse {
	return OrderResponse{
		OrderID:      order.OrderID,
		CustomerName: order.CustomerName,
		Email:        order.Email,
		Address:      order.Address,
		Phone:        order.Phone,
		Items:        order.Items,
		Total:        order.Total,
		Date:         order.Date,
		Status:       order.Status,
	}
}

// ToOrderResponses converts a list of domain orders
func ToOrderResponses(orders []ordering.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToOrderResponse(&orders[i]))
	}
	return responses
}
