package api

import (
	"errors"   // Error inspection
	"net/http" // HTTP status codes

	"shop_system/internal/domain" // Domain errors

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// statusOf maps a domain error to its HTTP status
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrOutOfStock),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// messageOf picks the client-facing text of a 4xx error
func messageOf(err error) string {
	var reason *domain.ReasonError
	if errors.As(err, &reason) {
		return reason.Reason // Message chosen by the service
	}
	var oos *domain.OutOfStockError
	if errors.As(err, &oos) {
		return oos.Error() // Names the product
	}
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return "Your cart is empty"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "Insufficient balance in wallet"
	case errors.Is(err, domain.ErrNotFound):
		return "Not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return "Forbidden"
	case errors.Is(err, domain.ErrConflict):
		return "Conflict"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "Invalid amount"
	default:
		return "Invalid request"
	}
}

// respondError writes err as {"error": ...}. Unexpected errors are logged and
// hidden behind a generic message.
func respondError(c *gin.Context, err error, action string) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		// Log the error with context
		logrus.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"), // Request ID
			"path":       c.FullPath(),              // Route
			"error":      err.Error(),               // Error message
		}).Error(action + " failed")
		c.JSON(status, gin.H{"error": action + " failed"}) // Return internal server error
		return
	}
	c.JSON(status, gin.H{"error": messageOf(err)})
}

// respondBindError reports a request that failed binding or validation
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": ToDetails(err)})
}
