// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lepetitmarche/storefront-api/internal/domain/checkout"
	"github.com/sirupsen/logrus"
)

// CheckoutHandler handles the trusted-total payment endpoints
type CheckoutHandler struct {
	checkoutService *checkout.Service
	logger          *logrus.Logger
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkoutService *checkout.Service, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		logger:          logger,
	}
}

// CreatePaymentIntent handles POST /checkout/payment-intent. The
// request body carries only product ids and quantities; every price
// comes from the catalog.
func (h *CheckoutHandler) CreatePaymentIntent(c *gin.Context) {
	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Panier vide",
		})
		return
	}

	clientSecret, err := h.checkoutService.CreatePaymentIntent(c.Request.Context(), &req)
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"clientSecret": clientSecret,
	})
}

// CreateSession handles POST /checkout/session, creating a hosted
// payment page whose redirect URLs derive from the request origin.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req checkout.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Panier vide",
		})
		return
	}

	origin := c.GetHeader("Origin")
	if origin == "" {
		origin = c.GetHeader("Referer")
	}

	sessionID, err := h.checkoutService.CreateHostedSession(c.Request.Context(), origin, &req)
	if err != nil {
		h.respondCheckoutError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id": sessionID,
	})
}

// respondCheckoutError maps pricing rejections to 400 with their exact
// message; anything else is logged and answered with a generic 500.
func (h *CheckoutHandler) respondCheckoutError(c *gin.Context, err error) {
	if verr, ok := checkout.AsValidationError(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": verr.Message,
		})
		return
	}

	h.logger.WithError(err).Error("Checkout failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Erreur interne",
	})
}
