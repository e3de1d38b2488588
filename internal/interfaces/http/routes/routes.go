// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/sneakstore-backend/internal/config"
	"github.com/your-org/sneakstore-backend/internal/interfaces/http/handlers"
	"github.com/your-org/sneakstore-backend/internal/interfaces/http/middleware"
	"github.com/your-org/sneakstore-backend/internal/pkg/notify"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log *logrus.Logger) {
	notifier := notify.NewRedisNotifier(redisClient, cfg, log)

	setupAuthRoutes(rg, db, redisClient, cfg, notifier)
	setupCatalogRoutes(rg, db, cfg)
	setupCartRoutes(rg, db, redisClient, cfg, notifier)
	setupCheckoutRoutes(rg, db, redisClient, cfg, notifier, log)
	setupOrderRoutes(rg, db, cfg)
	setupProfileRoutes(rg, db, redisClient, cfg)
	setupWishlistRoutes(rg, db, redisClient, cfg, notifier)
	setupNotificationRoutes(rg, cfg, notifier)
}

// setupAuthRoutes sets up authentication related routes
func setupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, notifier notify.Notifier) {
	authHandler := handlers.NewAuthHandler(db, redisClient, cfg, notifier)

	auth := rg.Group("/auth")
	{
		// Public auth endpoints, rate limited harder than the rest of
		// the API
		public := auth.Group("")
		public.Use(middleware.AuthRateLimit(cfg, redisClient))
		{
			public.POST("/register", authHandler.Register)
			public.POST("/login", authHandler.Login)
			public.POST("/refresh", authHandler.RefreshToken)
			public.POST("/forgot-password", authHandler.ForgotPassword)
			public.POST("/reset-password", authHandler.ResetPassword)
		}

		// Protected auth endpoints
		protected := auth.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			protected.POST("/logout", authHandler.Logout)
		}
	}
}

// setupCatalogRoutes sets up sneaker catalog routes, open to guests
func setupCatalogRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(db, cfg)

	sneakers := rg.Group("/sneakers")
	{
		sneakers.GET("", catalogHandler.GetSneakers)
		sneakers.GET("/featured", catalogHandler.GetFeatured)
		sneakers.GET("/brands", catalogHandler.GetBrands)
		sneakers.GET("/:id", catalogHandler.GetSneaker)
	}

	// Product page address: /product/:brand/:slug
	rg.GET("/product/:brand/:slug", catalogHandler.GetSneakerBySlug)
}

// setupCartRoutes sets up cart routes, working for both guest sessions
// and signed-in users
func setupCartRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, notifier notify.Notifier) {
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg, notifier)

	cart := rg.Group("/cart")
	cart.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cart.GET("", cartHandler.GetCart)
		cart.GET("/count", cartHandler.GetCartCount)
		cart.POST("/items", cartHandler.AddToCart)
		cart.PUT("/items/:productId/:size", cartHandler.UpdateCartItem)
		cart.DELETE("/items/:productId/:size", cartHandler.RemoveFromCart)
		cart.DELETE("", cartHandler.ClearCart)
	}
}

// setupCheckoutRoutes sets up checkout routes, signed-in users only
func setupCheckoutRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, notifier notify.Notifier, log *logrus.Logger) {
	checkoutHandler := handlers.NewCheckoutHandler(db, redisClient, cfg, notifier, log)

	checkout := rg.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware(cfg))
	{
		checkout.GET("/quote", checkoutHandler.GetQuote)
		checkout.POST("", checkoutHandler.PlaceOrder)
	}
}

// setupOrderRoutes sets up order history routes, signed-in users only
func setupOrderRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(db, cfg)

	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware(cfg))
	{
		orders.GET("", orderHandler.GetOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.GET("/:id/receipt", orderHandler.GetReceipt)
		orders.GET("/number/:number", orderHandler.GetOrderByNumber)
	}
}

// setupProfileRoutes sets up profile routes, signed-in users only
func setupProfileRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	profileHandler := handlers.NewProfileHandler(db, redisClient, cfg)

	profile := rg.Group("/profile")
	profile.Use(middleware.AuthMiddleware(cfg))
	{
		profile.GET("", profileHandler.GetProfile)
		profile.PUT("", profileHandler.UpdateProfile)
		profile.POST("/addresses", profileHandler.SaveAddress)
		profile.GET("/addresses/default", profileHandler.GetDefaultAddress)
	}
}

// setupWishlistRoutes sets up wishlist routes, signed-in users only
func setupWishlistRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config, notifier notify.Notifier) {
	wishlistHandler := handlers.NewWishlistHandler(db, redisClient, cfg, notifier)

	wishlist := rg.Group("/wishlist")
	wishlist.Use(middleware.AuthMiddleware(cfg))
	{
		wishlist.GET("", wishlistHandler.GetWishlist)
		wishlist.POST("", wishlistHandler.AddToWishlist)
		wishlist.DELETE("/:sneakerId", wishlistHandler.RemoveFromWishlist)
		wishlist.POST("/:sneakerId/move-to-cart", wishlistHandler.MoveToCart)
	}
}

// setupNotificationRoutes sets up the notification drain endpoint
func setupNotificationRoutes(rg *gin.RouterGroup, cfg *config.Config, notifier notify.Notifier) {
	notificationHandler := handlers.NewNotificationHandler(notifier, cfg)

	notifications := rg.Group("/notifications")
	notifications.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		notifications.GET("/drain", notificationHandler.Drain)
	}
}
