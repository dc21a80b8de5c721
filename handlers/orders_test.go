package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"stockcraft/models"
)

func seedAPIStock(t *testing.T, db *gorm.DB) *models.Stock {
	t.Helper()

	s := &models.Stock{
		Ticker:    "ACME",
		Company:   "Acme Corp",
		Price:     decimal.RequireFromString("12.30"),
		Available: 500,
	}
	require.NoError(t, db.Create(s).Error)
	return s
}

func TestOrderLifecycle(t *testing.T) {
	h, db := newTestHandler(t)
	user := seedAPIUser(t, db)
	stock := seedAPIStock(t, db)
	router := newTestRouter(h, user.ID)

	w := doJSON(router, http.MethodPost, "/orders", fmt.Sprintf(`{"stock_id":%d}`, stock.ID))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, http.MethodGet, "/orders", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, created.ID, orders[0].ID)

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/orders/%d", created.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, fmt.Sprintf("/orders/%d", created.ID), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPlaceOrderUnknownStock(t *testing.T) {
	h, db := newTestHandler(t)
	user := seedAPIUser(t, db)
	router := newTestRouter(h, user.ID)

	w := doJSON(router, http.MethodPost, "/orders", `{"stock_id":9999}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCancelOrderBadID(t *testing.T) {
	h, db := newTestHandler(t)
	user := seedAPIUser(t, db)
	router := newTestRouter(h, user.ID)

	w := doJSON(router, http.MethodDelete, "/orders/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioSummaryEndpoint(t *testing.T) {
	h, db := newTestHandler(t)
	user := seedAPIUser(t, db)
	stock := seedAPIStock(t, db)
	router := newTestRouter(h, user.ID)

	ctx := context.Background()
	_, err := h.Engine.Deposit(ctx, user.ID, decimal.RequireFromString("75.00"))
	require.NoError(t, err)
	_, err = h.Engine.AdjustPosition(ctx, user.ID, stock.ID, 4)
	require.NoError(t, err)

	w := doJSON(router, http.MethodGet, "/portfolio", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var summary struct {
		Account   models.CashAccount `json:"account"`
		Positions []models.Portfolio `json:"positions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, "75", summary.Account.Balance.String())
	require.Len(t, summary.Positions, 1)
	assert.Equal(t, 4, summary.Positions[0].Quantity)
}
