package handlers

import (
	"net/http"

	"github.com/digitalloto/loto-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// respondOK wraps successful payloads in the standard envelope
func respondOK(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

// respondError maps a service error to its HTTP status and writes the failure
// envelope. Unknown errors are treated as internal.
func respondError(c *gin.Context, err error) {
	serviceErr, ok := services.AsServiceError(err)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "internal error",
			"code":    services.CodeSaveFailed,
		})
		return
	}
	c.JSON(statusFor(serviceErr.Code), gin.H{
		"success": false,
		"error":   serviceErr.Message,
		"code":    serviceErr.Code,
	})
}

func statusFor(code string) int {
	switch code {
	case services.CodeDrawNotFound, services.CodeTicketNotFound, services.CodePackageNotFound:
		return http.StatusNotFound
	case services.CodeInvalidNumbers, services.CodeInvalidPackage, services.CodeInvalidCategory,
		services.CodeNegativeBalance, services.CodeInsufficientFunds, services.CodeDrawCompleted,
		services.CodeDrawHasTickets, services.CodeNoDrawsAvailable:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
