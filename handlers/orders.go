package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type OrderInput struct {
	StockID uint `json:"stock_id" binding:"required"`
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.Engine.PlaceOrder(c.Request.Context(), userID, input.StockID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "id": order.ID})
}

// CancelOrder is the "sell" action of the UI: it removes the order and its
// audit rows, nothing more.
func (h *Handler) CancelOrder(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return
	}

	if err := h.Engine.CancelOrder(c.Request.Context(), uint(orderID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled"})
}

func (h *Handler) GetOrders(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	limit, _ := strconv.Atoi(c.Query("limit"))
	orders, err := h.Queries.OrderHistory(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}
