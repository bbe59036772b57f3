package handler

import (
	"github.com/gin-gonic/gin"
	appordering "github.com/shopeasy/backend/internal/application/ordering"
	"github.com/shopeasy/backend/internal/interfaces/http/middleware"
)

// OrderHandler serves checkout and order history endpoints
type OrderHandler struct {
	BaseHandler
	service *appordering.CheckoutService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *appordering.CheckoutService) *OrderHandler {
	return &OrderHandler{service: service}
}

// RegisterRoutes registers checkout and order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/checkout", h.Checkout)
	rg.GET("/orders", h.History)
}

// Checkout places an order from the session's cart
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appordering.CheckoutInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	order, err := h.service.Checkout(c.Request.Context(), userID, middleware.GetCartSessionID(c), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, order)
}

// History returns the authenticated user's orders
func (h *OrderHandler) History(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	orders, err := h.service.History(c.Request.Context(), userID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.SuccessWithTotal(c, orders, len(orders))
}
