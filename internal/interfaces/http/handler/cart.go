package handler

import (
	"github.com/gin-gonic/gin"
	appordering "github.com/shopeasy/backend/internal/application/ordering"
	"github.com/shopeasy/backend/internal/interfaces/http/middleware"
)

// CartHandler serves the shopping cart endpoints
type CartHandler struct {
	BaseHandler
	service *appordering.CartService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *appordering.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// RegisterRoutes registers cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	{
		cart.GET("", h.View)
		cart.DELETE("", h.Clear)
		cart.POST("/items/:productId", h.Add)
		cart.PUT("/items/:productId", h.UpdateQuantity)
		cart.DELETE("/items/:productId", h.Remove)
	}
}

// View returns the session's cart with line and grand totals
func (h *CartHandler) View(c *gin.Context) {
	view, err := h.service.View(c.Request.Context(), middleware.GetCartSessionID(c))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, view)
}

// Add puts one unit of a product into the cart.
// Unknown products are ignored and the current cart is returned.
func (h *CartHandler) Add(c *gin.Context) {
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	view, err := h.service.Add(c.Request.Context(), middleware.GetCartSessionID(c), productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, view)
}

// UpdateQuantity sets the quantity of one cart line
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req appordering.UpdateQuantityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	view, err := h.service.UpdateQuantity(c.Request.Context(), middleware.GetCartSessionID(c), productID, req.Quantity)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, view)
}

// Remove deletes one cart line
func (h *CartHandler) Remove(c *gin.Context) {
	productID, err := parseID(c.Param("productId"))
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	view, err := h.service.Remove(c.Request.Context(), middleware.GetCartSessionID(c), productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, view)
}

// Clear discards the whole cart
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(c.Request.Context(), middleware.GetCartSessionID(c)); err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.NoContent(c)
}
