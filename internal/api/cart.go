package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion

	"shop_system/internal/middleware" // Authenticated user
	"shop_system/internal/service"    // Use cases

	"github.com/gin-gonic/gin" // Gin web framework
)

// AddToCartRequest is the body of POST /add-to-cart
type AddToCartRequest struct {
	ProductID uint   `json:"product_id" binding:"required"` // Product to add
	Quantity  *int64 `json:"quantity"`                      // Defaults to 1
}

// AddToCartHandler adds a product to the caller's cart
func AddToCartHandler(cart *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req AddToCartRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
		quantity := int64(1) // Default quantity
		if req.Quantity != nil {
			quantity = *req.Quantity
		}
		if err := cart.AddToCart(c.Request.Context(), userID, req.ProductID, quantity); err != nil {
			respondError(c, err, "Adding to cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product added to cart"})
	}
}

// ViewCartHandler returns the caller's cart priced at current prices
func ViewCartHandler(cart *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		view, err := cart.View(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Loading cart")
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// RemoveFromCartHandler drops one product from the caller's cart
func RemoveFromCartHandler(cart *service.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 0)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}
		if err := cart.Remove(c.Request.Context(), userID, uint(productID)); err != nil {
			respondError(c, err, "Removing from cart")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product removed from cart"})
	}
}
