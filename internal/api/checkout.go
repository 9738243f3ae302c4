package api

import (
	"errors"   // Error inspection
	"io"       // Empty body detection
	"net/http" // HTTP status codes
	"time"     // Purchase timestamp

	"shop_system/internal/middleware" // Authenticated user
	"shop_system/internal/service"    // Use cases

	"github.com/gin-gonic/gin" // Gin web framework
)

// BuyCartRequest is the optional body of POST /buy-cart
type BuyCartRequest struct {
	DateOfPurchase *time.Time `json:"date_of_purchase"` // Honored only when the server allows client purchase times
}

// BuyCartHandler checks out the caller's whole cart
func BuyCartHandler(checkout *service.CheckoutService, allowClientTime bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req BuyCartRequest
		// The body is optional
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBindError(c, err)
			return
		}
		var purchasedAt *time.Time
		if allowClientTime {
			purchasedAt = req.DateOfPurchase // Backfills and fixtures
		}
		receipt, err := checkout.Checkout(c.Request.Context(), userID, purchasedAt)
		if err != nil {
			respondError(c, err, "Purchase")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":           "Purchase successful",    // Success message
			"total_price":       receipt.Total,            // Amount charged
			"remaining_balance": receipt.RemainingBalance, // Balance after the debit
			"orders":            receipt.Orders,           // One order per cart line
		})
	}
}

// OrderHistoryHandler returns every order of the caller
func OrderHistoryHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		history, err := orders.History(c.Request.Context(), userID)
		if err != nil {
			respondError(c, err, "Loading order history")
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

// OrderHistoryPageHandler returns one page of the caller's orders, newest first
func OrderHistoryPageHandler(orders *service.OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		page, err := orders.HistoryPage(c.Request.Context(), userID, pageFromQuery(c, catalogPageSize))
		if err != nil {
			respondError(c, err, "Loading order history")
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
