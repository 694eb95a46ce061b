// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lepetitmarche/storefront-api/internal/config"
	"github.com/lepetitmarche/storefront-api/internal/domain/user"
	"github.com/lepetitmarche/storefront-api/internal/interfaces/http/middleware"
	"github.com/lepetitmarche/storefront-api/internal/pkg/auth"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles OAuth sign-in and session endpoints
type AuthHandler struct {
	userService *user.Service
	verifier    *auth.GoogleVerifier
	jwtManager  *auth.JWTManager
	logger      *logrus.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService *user.Service, cfg *config.Config, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		verifier:    auth.NewGoogleVerifier(cfg),
		jwtManager:  auth.NewJWTManager(cfg),
		logger:      logger,
	}
}

type googleSignInRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// GoogleSignIn handles POST /auth/google. The ID token is verified
// against Google before any account is touched.
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var req googleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Données invalides",
		})
		return
	}

	profile, err := h.verifier.Verify(c.Request.Context(), req.IDToken)
	if err != nil {
		h.logger.WithError(err).Warn("Google ID token verification failed")
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid ID token",
		})
		return
	}

	u, err := h.userService.UpsertOAuthUser(c.Request.Context(), "google", profile.Subject, profile.Email, profile.Name, profile.Picture)
	if err != nil {
		h.logger.WithError(err).Error("Failed to upsert OAuth user")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne serveur",
		})
		return
	}

	token, err := h.jwtManager.GenerateSessionToken(u.ID, u.Email, u.Name)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate session token")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne serveur",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":      u.ID,
			"email":   u.Email,
			"name":    u.Name,
			"picture": u.Picture,
		},
	})
}

// GetProfile handles GET /auth/profile for an authenticated session
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	u, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userID).Error("Failed to get user profile")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Erreur interne serveur",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":         u.ID,
		"email":      u.Email,
		"name":       u.Name,
		"picture":    u.Picture,
		"last_login": u.LastLogin,
	})
}
