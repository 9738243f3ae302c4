package api

import (
	"net/http" // HTTP status codes
	"strconv"  // String conversion
	"strings"  // String manipulation
	"time"     // Time durations

	"shop_system/internal/domain"  // Domain models
	"shop_system/internal/service" // Use cases
	"shop_system/internal/store"   // Listing filters
	"shop_system/internal/utils"   // Utility functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
)

// cachedPage is a listing page as stored in Redis
type cachedPage[T any] struct {
	service.Paged[T]
	Cached bool `json:"cached"` // Indicate response is from cache
}

// ListUsersHandler returns all users with their wallet info
func ListUsersHandler(admin *service.AdminService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		page := pageFromQuery(c, adminPageSize) // Pagination parameters
		// Create a cache key based on pagination parameters
		cacheKey := utils.AdminUsersPrefix + "page=" + strconv.Itoa(page.Number) + ":size=" + strconv.Itoa(page.Size)
		var cached cachedPage[service.UserSummary]
		// If cached data found, return it
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			cached.Cached = true
			c.JSON(http.StatusOK, cached)
			return
		}
		users, err := admin.Users(ctx, page) // Fetch users with wallet info
		if err != nil {
			respondError(c, err, "Listing users")
			return
		}
		resp := cachedPage[service.UserSummary]{Paged: users}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, ttl) // Cache the response for future requests
		c.JSON(http.StatusOK, resp)                       // Return the response
	}
}

// ListTransactionsHandler returns all transactions, with optional filtering by user, type, or date
func ListTransactionsHandler(admin *service.AdminService, rdb *redis.Client, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		filter, err := transactionFilter(c) // Parse the filters
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		page := pageFromQuery(c, adminPageSize)
		// Build cache key from the normalized filters
		keyParts := []string{
			"user_id=" + strconv.FormatUint(uint64(filter.UserID), 10),
			"type=" + filter.Type,
			"from=" + formatBound(filter.From),
			"to=" + formatBound(filter.To),
			"page=" + strconv.Itoa(page.Number),
			"page_size=" + strconv.Itoa(page.Size),
		}
		cacheKey := utils.AdminTxsPrefix + strings.Join(keyParts, ":")
		var cached cachedPage[domain.Transaction]
		// If cached data found, return it
		if found, err := utils.GetCache(ctx, rdb, cacheKey, &cached); err == nil && found {
			cached.Cached = true
			c.JSON(http.StatusOK, cached)
			return
		}
		txs, err := admin.Transactions(ctx, filter, page)
		if err != nil {
			respondError(c, err, "Listing transactions")
			return
		}
		resp := cachedPage[domain.Transaction]{Paged: txs}
		_ = utils.SetCache(ctx, rdb, cacheKey, resp, ttl) // Cache the response for future requests
		c.JSON(http.StatusOK, resp)
	}
}

type filterError string

func (e filterError) Error() string { return string(e) }

// transactionFilter reads user_id, type, from and to. Bounds accept RFC 3339
// timestamps or YYYY-MM-DD dates (UTC); a date in to covers the whole day.
func transactionFilter(c *gin.Context) (store.TransactionFilter, error) {
	var f store.TransactionFilter
	if v := c.Query("user_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 0)
		if err != nil {
			return f, filterError("user_id must be a positive integer")
		}
		f.UserID = uint(id)
	}
	switch t := c.Query("type"); t {
	case "", domain.TransactionDeposit, domain.TransactionPurchase:
		f.Type = t
	default:
		return f, filterError("type must be deposit or purchase")
	}
	var err error
	if f.From, err = parseBound(c.Query("from"), false); err != nil {
		return f, filterError("from must be a date or an RFC 3339 timestamp")
	}
	if f.To, err = parseBound(c.Query("to"), true); err != nil {
		return f, filterError("to must be a date or an RFC 3339 timestamp")
	}
	return f, nil
}

func parseBound(v string, endOfDay bool) (time.Time, error) {
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		return d.AddDate(0, 0, 1).Add(-time.Millisecond), nil
	}
	return d, nil
}

func formatBound(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return strconv.FormatInt(t.UnixMilli(), 10)
}
