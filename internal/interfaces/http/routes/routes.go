// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lepetitmarche/storefront-api/internal/config"
	"github.com/lepetitmarche/storefront-api/internal/domain/cart"
	"github.com/lepetitmarche/storefront-api/internal/domain/checkout"
	"github.com/lepetitmarche/storefront-api/internal/domain/contact"
	"github.com/lepetitmarche/storefront-api/internal/domain/payment"
	"github.com/lepetitmarche/storefront-api/internal/domain/product"
	"github.com/lepetitmarche/storefront-api/internal/domain/user"
	"github.com/lepetitmarche/storefront-api/internal/interfaces/http/handlers"
	"github.com/lepetitmarche/storefront-api/internal/interfaces/http/middleware"
	"github.com/lepetitmarche/storefront-api/internal/pkg/email"
	"github.com/lepetitmarche/storefront-api/internal/pkg/ratelimit"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SetupRoutes wires every storefront endpoint onto the API group
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, limiter *ratelimit.Limiter, cfg *config.Config, logger *logrus.Logger) {
	productService := product.NewService(db, cfg)

	setupProductRoutes(rg, productService, logger)
	setupCartRoutes(rg, redisClient, productService, logger)
	setupCheckoutRoutes(rg, productService, limiter, cfg, logger)
	setupContactRoutes(rg, cfg, logger)
	setupAuthRoutes(rg, db, cfg, logger)
}

func setupProductRoutes(rg *gin.RouterGroup, productService *product.Service, logger *logrus.Logger) {
	productHandler := handlers.NewProductHandler(productService, logger)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
}

func setupCartRoutes(rg *gin.RouterGroup, redisClient *redis.Client, productService *product.Service, logger *logrus.Logger) {
	cartService := cart.NewService(cart.NewRedisStore(redisClient), productService, logger)
	cartHandler := handlers.NewCartHandler(cartService, logger)

	cartGroup := rg.Group("/cart")
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.GET("/count", cartHandler.GetCartCount)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}
}

func setupCheckoutRoutes(rg *gin.RouterGroup, productService *product.Service, limiter *ratelimit.Limiter, cfg *config.Config, logger *logrus.Logger) {
	stripeService := payment.NewStripeService(cfg, logger)
	checkoutService := checkout.NewService(productService, stripeService, cfg, logger)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, logger)

	// Origin is checked before the rate limiter so a rejected origin
	// never consumes a slot from the client's window.
	checkoutGroup := rg.Group("/checkout")
	checkoutGroup.Use(middleware.OriginCheck(cfg))
	checkoutGroup.Use(middleware.RateLimit(limiter))
	{
		checkoutGroup.POST("", checkoutHandler.CreateSession)
		checkoutGroup.POST("/create-payment-intent", checkoutHandler.CreatePaymentIntent)
	}
}

func setupContactRoutes(rg *gin.RouterGroup, cfg *config.Config, logger *logrus.Logger) {
	mailer := email.NewService(cfg, logger)
	contactService := contact.NewService(cfg, mailer, logger)
	contactHandler := handlers.NewContactHandler(contactService, logger)

	rg.POST("/contact", contactHandler.Submit)
}

func setupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config, logger *logrus.Logger) {
	userService := user.NewService(db, cfg)
	authHandler := handlers.NewAuthHandler(userService, cfg, logger)

	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/google", authHandler.GoogleSignIn)

		protected := authGroup.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.GET("/profile", authHandler.GetProfile)
		}
	}
}
