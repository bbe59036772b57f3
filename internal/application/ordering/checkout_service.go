package ordering

import (
	"context"

	"github.com/shopeasy/backend/internal/domain/ordering"
	"github.com/shopeasy/backend/internal/infrastructure/session"
	"go.uber.org/zap"
)

// CheckoutService turns a session's cart into a persisted order
type CheckoutService struct {
	orderRepo ordering.OrderRepository
	carts     session.CartStore
	logger    *zap.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(orderRepo ordering.OrderRepository, carts session.CartStore, logger *zap.Logger) *CheckoutService {
	return &CheckoutService{
		orderRepo: orderRepo,
		carts:     carts,
		logger:    logger,
	}
}

// Checkout creates an order from the session's cart and clears the cart.
// Fails with EMPTY_CART when the cart has no items. Catalog quantities are
// not adjusted at checkout; stock tracking is informational only.
func (s *CheckoutService) Checkout(ctx context.Context, userID int64, sessionID string, input CheckoutInput) (*OrderResponse, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	order, err := ordering.NewOrder(userID, cart, ordering.ShippingDetails{
		CustomerName: input.CustomerName,
		Email:        input.Email,
		Address:      input.Address,
		Phone:        input.Phone,
	})
	if err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	// The order is committed; a failed cart cleanup must not undo the checkout.
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		s.logger.Warn("Failed to clear cart after checkout",
			zap.String("session_id", sessionID),
			zap.Error(err))
	}

	s.logger.Info("Order placed",
		zap.Int64("order_id", order.OrderID),
		zap.Int64("user_id", userID),
		zap.String("total", order.Total.String()))

	response := ToOrderResponse(order)
	return &response, nil
}

// History returns the orders placed by the given user, oldest first
func (s *CheckoutService) History(ctx context.Context, userID int64) ([]OrderResponse, error) {
	orders, err := s.orderRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return ToOrderResponses(orders), nil
}
