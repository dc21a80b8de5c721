package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetPortfolio(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	summary, err := h.Queries.PortfolioSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

type PositionInput struct {
	UserID  uint `json:"user_id" binding:"required"`
	StockID uint `json:"stock_id" binding:"required"`
	Delta   int  `json:"delta" binding:"required"`
}

// AdjustPosition is the admin backdoor for granting or clawing back shares
// directly, outside the order flow.
func (h *Handler) AdjustPosition(c *gin.Context) {
	var input PositionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pos, err := h.Engine.AdjustPosition(c.Request.Context(), input.UserID, input.StockID, input.Delta)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Position updated", "id": pos.ID, "quantity": pos.Quantity})
}

func (h *Handler) DeletePosition(c *gin.Context) {
	portfolioID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid position id"})
		return
	}

	if err := h.Engine.DeletePosition(c.Request.Context(), uint(portfolioID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Position deleted"})
}
