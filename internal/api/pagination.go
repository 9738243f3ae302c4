package api

import (
	"strconv" // String conversion

	"shop_system/internal/store" // Page type

	"github.com/gin-gonic/gin" // Gin web framework
)

// Page sizes used by the paginated listings
const (
	catalogPageSize = 10  // Products and order history
	adminPageSize   = 20  // Admin listings and wallet ledger
	maxPageSize     = 100 // Upper bound for page_size
)

// pageFromQuery reads page and page_size, ignoring invalid values
func pageFromQuery(c *gin.Context, defaultSize int) store.Page {
	page := 1               // Default page number
	pageSize := defaultSize // Default page size
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v // Set page if valid
		}
	}
	// Check and set page size within limits
	if ps := c.Query("page_size"); ps != "" {
		if v, err := strconv.Atoi(ps); err == nil && v > 0 && v <= maxPageSize {
			pageSize = v // Set page size if valid
		}
	}
	return store.Page{Number: page, Size: pageSize}
}
