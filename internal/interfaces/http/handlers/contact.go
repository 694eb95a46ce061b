// internal/interfaces/http/handlers/contact.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lepetitmarche/storefront-api/internal/domain/contact"
	"github.com/sirupsen/logrus"
)

// ContactHandler handles the contact form endpoint
type ContactHandler struct {
	contactService *contact.Service
	logger         *logrus.Logger
}

// NewContactHandler creates a new contact handler
func NewContactHandler(contactService *contact.Service, logger *logrus.Logger) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
	}
}

// Submit handles POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok":      false,
			"message": "Données invalides",
		})
		return
	}

	result, err := h.contactService.Submit(c.Request.Context(), &req, c.ClientIP(), c.GetHeader("User-Agent"))
	if err != nil {
		h.logger.WithError(err).Error("Contact form delivery failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"ok":      false,
			"message": "Erreur interne serveur",
		})
		return
	}

	if !result.OK {
		c.JSON(http.StatusBadRequest, result)
		return
	}

	c.JSON(http.StatusOK, result)
}
