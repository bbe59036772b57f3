package ordering

import (
	"context"
	"errors"

	"github.com/shopeasy/backend/internal/domain/catalog"
	"github.com/shopeasy/backend/internal/domain/shared"
	"github.com/shopeasy/backend/internal/infrastructure/session"
	"go.uber.org/zap"
)

// CartService manages the shopping cart of one session
type CartService struct {
	productRepo catalog.ProductRepository
	carts       session.CartStore
	logger      *zap.Logger
}

// NewCartService creates a new cart service
func NewCartService(productRepo catalog.ProductRepository, carts session.CartStore, logger *zap.Logger) *CartService {
	return &CartService{
		productRepo: productRepo,
		carts:       carts,
		logger:      logger,
	}
}

// Add puts one unit of the product into the session's cart.
// Adding an unknown product is a no-op; the current cart is returned unchanged.
func (s *CartService) Add(ctx context.Context, sessionID string, productID int64) (*CartView, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if product == nil {
		s.logger.Warn("Ignored add of unknown product",
			zap.String("session_id", sessionID),
			zap.Int64("product_id", productID))
		view := ToCartView(cart)
		return &view, nil
	}

	cart.AddProduct(product)
	if err := s.carts.Put(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.Info("Product added to cart",
		zap.String("session_id", sessionID),
		zap.Int64("product_id", productID))

	view := ToCartView(cart)
	return &view, nil
}

// View returns the current cart contents with line and grand totals
func (s *CartService) View(ctx context.Context, sessionID string) (*CartView, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	view := ToCartView(cart)
	return &view, nil
}

// UpdateQuantity sets the quantity of a cart line.
// A quantity of zero or less removes the line. Unknown product IDs are ignored.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, quantity int) (*CartView, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.SetQuantity(productID, quantity)
	if err := s.carts.Put(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.Info("Cart quantity updated",
		zap.String("session_id", sessionID),
		zap.Int64("product_id", productID),
		zap.Int("quantity", quantity))

	view := ToCartView(cart)
	return &view, nil
}

// Remove deletes a cart line. Removing an absent product is a no-op.
func (s *CartService) Remove(ctx context.Context, sessionID string, productID int64) (*CartView, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.RemoveProduct(productID)
	if err := s.carts.Put(ctx, cart); err != nil {
		return nil, err
	}

	s.logger.Info("Product removed from cart",
		zap.String("session_id", sessionID),
		zap.Int64("product_id", productID))

	view := ToCartView(cart)
	return &view, nil
}

// Clear discards every line of the session's cart
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return err
	}

	s.logger.Info("Cart cleared", zap.String("session_id", sessionID))
	return nil
}
