package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"time"     // Cache TTL

	"shop_system/internal/domain"  // Domain models
	"shop_system/internal/service" // Use cases
	"shop_system/internal/utils"   // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/shopspring/decimal"
)

// AddProductRequest is the body of POST /add-product
type AddProductRequest struct {
	Name        string          `json:"name" binding:"required,max=255"`     // Product name
	Category    string          `json:"category" binding:"required,max=255"` // Category, matched exactly
	Price       decimal.Decimal `json:"price"`                               // Checked by the catalog service
	Description string          `json:"description"`                         // Free text
	Stock       int64           `json:"no_of_stocks" binding:"gte=0"`        // Units available
	Brand       string          `json:"brand" binding:"required,max=255"`    // Brand, matched exactly
}

// CategoryRequest is the body of POST /products-by-category
type CategoryRequest struct {
	Category string `json:"category" binding:"required"` // Category to list
	Brand    string `json:"brand"`                       // Optional brand filter
}

// AddProductHandler lets an admin add a catalog entry
func AddProductHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		product, err := catalog.Create(c.Request.Context(), service.NewProduct{
			Name:        req.Name,
			Category:    req.Category,
			Brand:       req.Brand,
			Description: req.Description,
			Price:       req.Price,
			Stock:       req.Stock,
		})
		if err != nil {
			respondError(c, err, "Adding product")
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}

// GetProductsHandler returns the whole catalog without pagination
func GetProductsHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := catalog.All(c.Request.Context())
		if err != nil {
			respondError(c, err, "Listing products")
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// ListProductsHandler returns one page of the catalog
func ListProductsHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := catalog.List(c.Request.Context(), pageFromQuery(c, catalogPageSize))
		if err != nil {
			respondError(c, err, "Listing products")
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// ProductsByCategoryHandler returns one page of a category, optionally of one brand
func ProductsByCategoryHandler(catalog *service.CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CategoryRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		page, err := catalog.ByCategory(c.Request.Context(), req.Category, req.Brand, pageFromQuery(c, catalogPageSize))
		if err != nil {
			respondError(c, err, "Listing products")
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

// GetProductHandler returns one product, served from Redis when cached
func GetProductHandler(catalog *service.CatalogService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 0) // Parse product ID
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		ctx := c.Request.Context()
		cacheKey := utils.ProductKey(uint(id)) // Cache key for product
		var product domain.Product
		// If found in cache, return it
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &product); err == nil && found {
			c.Header("X-Cache", "HIT")
			c.JSON(http.StatusOK, product)
			return
		}
		product, err = catalog.Get(ctx, uint(id)) // If not in cache, fetch from DB
		if err != nil {
			respondError(c, err, "Fetching product")
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, product, ttl) // Cache the product
		c.Header("X-Cache", "MISS")
		c.JSON(http.StatusOK, product)
	}
}
