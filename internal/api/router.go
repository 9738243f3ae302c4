package api

import (
	"time" // CORS max age

	"shop_system/internal/config"     // Application configuration
	"shop_system/internal/middleware" // Custom middleware
	"shop_system/internal/service"    // Use cases

	"github.com/gin-contrib/cors"  // CORS middleware
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// Deps is what the router needs to build every handler
type Deps struct {
	Config   *config.Config
	Services *service.Services
	Redis    *redis.Client // Nil disables caching and rate limiting
	DB       Pinger
}

// NewRouter builds the gin engine with middleware and every route
func NewRouter(d Deps) (*gin.Engine, error) {
	InitValidator()
	cfg := d.Config
	svc := d.Services

	r := gin.New() // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestIDMiddleware(), middleware.LoggerMiddleware())

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		return nil, err
	}

	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Admin-Key", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader, "X-Cache"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.GET("/healthz", HealthHandler(d.DB, d.Redis)) // Liveness endpoint

	// Auth routes
	limit := middleware.RateLimit(d.Redis, cfg.RateLimitMax, cfg.RateLimitWindow, middleware.KeyByIPAndPath())
	r.POST("/register", limit, RegisterHandler(svc.Auth)) // Registration endpoint
	r.POST("/login", limit, LoginHandler(svc.Auth))       // Login endpoint
	r.POST("/token/refresh", RefreshHandler(svc.Auth))    // Token refresh endpoint

	// Public catalog routes
	r.GET("/get-products", GetProductsHandler(svc.Catalog))                      // Whole catalog
	r.GET("/products", ListProductsHandler(svc.Catalog))                         // Paginated catalog
	r.POST("/products-by-category", ProductsByCategoryHandler(svc.Catalog))      // Category and brand filter
	r.GET("/product/:id", GetProductHandler(svc.Catalog, d.Redis, cfg.CacheTTL)) // Product by ID

	// Customer routes (protected by JWT)
	auth := middleware.JWTAuthMiddleware(cfg.JWTSecret)
	user := r.Group("/", auth)
	user.POST("/add-to-cart", AddToCartHandler(svc.Cart))                             // Add to cart
	user.GET("/cart", ViewCartHandler(svc.Cart))                                      // View cart
	user.DELETE("/cart/:product_id", RemoveFromCartHandler(svc.Cart))                 // Remove from cart
	user.POST("/buy-cart", BuyCartHandler(svc.Checkout, cfg.AllowClientPurchaseTime)) // Checkout
	user.GET("/get-order-history", OrderHistoryHandler(svc.Orders))                   // All orders
	user.GET("/order-history", OrderHistoryPageHandler(svc.Orders))                   // Paginated orders
	user.POST("/add-wallet", AddFundsHandler(svc.Wallet))                             // Top up
	user.GET("/wallet", GetWalletHandler(svc.Wallet, d.Redis, cfg.CacheTTL))          // Wallet details
	user.GET("/wallet/transactions", WalletTransactionsHandler(svc.Wallet))           // Wallet ledger

	// Admin routes (protected, admin only)
	admin := r.Group("/", auth, middleware.AdminOnlyMiddleware(svc.Admin))
	admin.POST("/add-product", AddProductHandler(svc.Catalog))                                  // Create product
	admin.GET("/sales-report", SalesReportHandler(svc.Reports))                                 // Sales by day
	admin.GET("/sales-report-by-brand", SalesReportByBrandHandler(svc.Reports))                 // Sales by brand
	admin.GET("/admin/users", ListUsersHandler(svc.Admin, d.Redis, cfg.CacheTTL))               // List users endpoint
	admin.GET("/admin/transactions", ListTransactionsHandler(svc.Admin, d.Redis, cfg.CacheTTL)) // List transactions endpoint

	return r, nil
}
