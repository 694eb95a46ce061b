// internal/interfaces/http/middleware/origin.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lepetitmarche/storefront-api/internal/config"
)

// OriginCheck rejects requests whose declared origin does not match
// the configured base URL. A missing header is tolerated since not
// all clients set one; this is CSRF hardening, not authentication.
func OriginCheck(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = c.GetHeader("Referer")
		}

		if origin != "" && !strings.HasPrefix(origin, cfg.App.BaseURL) {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Origine non autorisée",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
