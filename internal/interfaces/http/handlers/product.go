// internal/interfaces/http/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lepetitmarche/storefront-api/internal/domain/product"
	"github.com/sirupsen/logrus"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	productService *product.Service
	logger         *logrus.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *product.Service, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context())
	if err != nil {
		h.logger.WithError(err).Error("Failed to list products")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne serveur",
		})
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, products)
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Paramètre 'id' manquant ou invalide",
		})
		return
	}

	p, err := h.productService.GetProduct(c.Request.Context(), id)
	if err == product.ErrNotFound {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Produit introuvable",
		})
		return
	}
	if err != nil {
		h.logger.WithError(err).WithField("product_id", id).Error("Failed to get product")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne serveur",
		})
		return
	}

	c.JSON(http.StatusOK, p)
}
