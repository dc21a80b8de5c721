package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stockcraft/ledger"
)

// respondError translates the ledger error taxonomy into HTTP responses.
// Storage errors get a generic body so driver detail never reaches clients.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be greater than $0.00"})
	case errors.Is(err, ledger.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity cannot go negative"})
	case errors.Is(err, ledger.ErrInsufficientFunds):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "Insufficient funds"})
	case errors.Is(err, ledger.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, ledger.ErrConstraintViolation):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflicts with existing data"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}
