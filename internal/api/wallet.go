package api

import (
	"encoding/json" // Raw amount
	"errors"        // Error inspection
	"io"            // Empty body detection
	"net/http"      // HTTP status codes
	"time"          // Cache TTL

	"shop_system/internal/domain"     // Domain models
	"shop_system/internal/middleware" // Authenticated user
	"shop_system/internal/service"    // Use cases
	"shop_system/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// AddFundsRequest is the body of POST /add-wallet. The amount may be a JSON
// number or a decimal string.
type AddFundsRequest struct {
	Amount json.RawMessage `json:"amount"`
}

// AddFundsHandler tops up the caller's wallet
func AddFundsHandler(wallets *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req AddFundsRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBindError(c, err)
			return
		}
		amount, err := service.ParseAmount(req.Amount) // Validate the amount
		if err != nil {
			respondError(c, err, "Deposit")
			return
		}
		wallet, err := wallets.TopUp(c.Request.Context(), userID, amount)
		if err != nil {
			respondError(c, err, "Deposit")
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Funds added", "current_balance": wallet.Balance})
	}
}

// GetWalletHandler returns wallet info for the authenticated user
func GetWalletHandler(wallets *service.WalletService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c) // Get userID from context
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		ctx := c.Request.Context()
		cacheKey := utils.WalletKey(userID) // Cache key for wallet
		var wallet domain.Wallet            // Wallet struct to hold data
		// If found in cache, return it
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &wallet); err == nil && found {
			c.JSON(http.StatusOK, gin.H{"wallet": wallet, "cached": true})
			return
		}
		wallet, err := wallets.Details(ctx, userID) // If not in cache, fetch from DB
		if err != nil {
			respondError(c, err, "Loading wallet")
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, wallet, ttl)             // Cache the wallet
		c.JSON(http.StatusOK, gin.H{"wallet": wallet, "cached": false}) // Return wallet info
	}
}

// WalletTransactionsHandler returns one page of the caller's wallet ledger
func WalletTransactionsHandler(wallets *service.WalletService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		page, err := wallets.Ledger(c.Request.Context(), userID, pageFromQuery(c, adminPageSize))
		if err != nil {
			respondError(c, err, "Loading transactions")
			return
		}
		c.JSON(http.StatusOK, page)
	}
}
