// internal/interfaces/http/middleware/ratelimit.go
package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/lepetitmarche/storefront-api/internal/pkg/ratelimit"
)

// ClientKey derives the rate-limit key for a request: the first entry
// of X-Forwarded-For, then the resolved client IP, then the fallback
// sentinel.
func ClientKey(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	return ratelimit.FallbackKey
}

// RateLimit bounds requests per client key within the limiter's
// rolling window. Rejected requests are not recorded against the
// window.
func RateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := ClientKey(c)

		if !limiter.Allow(key) {
			c.Header("Retry-After", "60")
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Trop de requêtes",
			})
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(limiter.Remaining(key)))
		c.Next()
	}
}
