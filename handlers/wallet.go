package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stockcraft/ledger"
)

// Handler bundles the ledger engine and query facade for the routes that
// mutate or read ledger state. Constructed once in main and injected.
type Handler struct {
	Engine  *ledger.Engine
	Queries *ledger.Queries
}

func NewHandler(engine *ledger.Engine, queries *ledger.Queries) *Handler {
	return &Handler{Engine: engine, Queries: queries}
}

// Amounts arrive as strings so clients cannot lose cents to float encoding.
type AmountInput struct {
	Amount string `json:"amount" binding:"required"`
}

func (h *Handler) Deposit(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input AmountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		respondError(c, ledger.ErrInvalidAmount)
		return
	}

	acct, err := h.Engine.Deposit(c.Request.Context(), userID, amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Deposit successful", "balance": acct.Balance})
}

func (h *Handler) Withdraw(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var input AmountInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		respondError(c, ledger.ErrInvalidAmount)
		return
	}

	acct, err := h.Engine.Withdraw(c.Request.Context(), userID, amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Withdrawal successful", "balance": acct.Balance})
}

func (h *Handler) GetWallet(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	summary, err := h.Queries.PortfolioSummary(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary.Account)
}
