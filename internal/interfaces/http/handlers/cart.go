// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lepetitmarche/storefront-api/internal/domain/cart"
	"github.com/lepetitmarche/storefront-api/internal/domain/product"
	"github.com/sirupsen/logrus"
)

// CartHandler handles cart endpoints
type CartHandler struct {
	cartService *cart.Service
	logger      *logrus.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *cart.Service, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// GetCart handles GET /cart. A redirect_status query parameter left by
// the payment redirect is consumed here exactly once: "succeeded"
// clears the cart, "canceled" leaves it untouched; both surface a
// notice so the client can display it and drop the parameter from its
// URL.
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	var notice string
	if status := c.Query("redirect_status"); status != "" {
		var err error
		notice, err = h.cartService.Reconcile(c.Request.Context(), sessionID, status)
		if err != nil {
			h.logger.WithError(err).Error("Failed to reconcile cart after payment redirect")
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to retrieve cart",
			})
			return
		}
	}

	cartResponse, err := h.cartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to retrieve cart")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	response := gin.H{
		"message": "Cart retrieved successfully",
		"data":    cartResponse,
	}
	if notice != "" {
		response["notice"] = notice
	}
	c.JSON(http.StatusOK, response)
}

// AddToCart handles POST /cart/items
func (h *CartHandler) AddToCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	var req cart.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartResponse, err := h.cartService.AddItem(c.Request.Context(), sessionID, &req)
	if err == product.ErrNotFound {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Produit introuvable",
		})
		return
	}
	if err != nil {
		h.logger.WithError(err).Error("Failed to add item to cart")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add item to cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    cartResponse,
	})
}

// UpdateCartItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateCartItem(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)
	productID := c.Param("id")

	var req cart.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	cartResponse, err := h.cartService.UpdateQuantity(c.Request.Context(), sessionID, productID, req.Quantity)
	if err != nil {
		h.logger.WithError(err).Error("Failed to update cart item")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated successfully",
		"data":    cartResponse,
	})
}

// RemoveFromCart handles DELETE /cart/items/:id
func (h *CartHandler) RemoveFromCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)
	productID := c.Param("id")

	cartResponse, err := h.cartService.RemoveItem(c.Request.Context(), sessionID, productID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to remove cart item")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to remove cart item",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart successfully",
		"data":    cartResponse,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		h.logger.WithError(err).Error("Failed to clear cart")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to clear cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

// GetCartCount handles GET /cart/count
func (h *CartHandler) GetCartCount(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	count, err := h.cartService.ItemCount(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get cart count")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get cart count",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart count retrieved successfully",
		"data": gin.H{
			"count": count,
		},
	})
}

// getOrCreateSessionID gets the session id from the cookie or creates
// a new one.
func (h *CartHandler) getOrCreateSessionID(c *gin.Context) string {
	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie("session_id", sessionID, 86400*30, "/", "", false, true)
	}
	return sessionID
}
