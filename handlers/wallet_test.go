package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stockcraft/database"
	"stockcraft/ledger"
	"stockcraft/models"
)

func newTestHandler(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "api.db")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	store := ledger.NewStore(db)
	return NewHandler(ledger.NewEngine(store), ledger.NewQueries(store)), db
}

// authAs stands in for the JWT middleware in tests.
func authAs(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

func newTestRouter(h *Handler, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	auth := router.Group("/", authAs(userID))
	auth.GET("/wallet", h.GetWallet)
	auth.POST("/wallet/deposit", h.Deposit)
	auth.POST("/wallet/withdraw", h.Withdraw)
	auth.GET("/portfolio", h.GetPortfolio)
	auth.POST("/orders", h.PlaceOrder)
	auth.GET("/orders", h.GetOrders)
	auth.DELETE("/orders/:id", h.CancelOrder)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedAPIUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	u := &models.User{
		Username:  "trader",
		Email:     "trader@example.com",
		FirstName: "Grace",
		LastName:  "Hopper",
		Password:  "hashed",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func TestWalletFlow(t *testing.T) {
	h, db := newTestHandler(t)
	user := seedAPIUser(t, db)
	router := newTestRouter(h, user.ID)

	w := doJSON(router, http.MethodPost, "/wallet/deposit", `{"amount":"100.00"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/wallet/withdraw", `{"amount":"150.00"}`)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	w = doJSON(router, http.MethodPost, "/wallet/withdraw", `{"amount":"40.00"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/wallet", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var acct models.CashAccount
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &acct))
	assert.Equal(t, "60", acct.Balance.String())
}

func TestDepositRejectsMalformedAmount(t *testing.T) {
	h, db := newTestHandler(t)
	user := seedAPIUser(t, db)
	router := newTestRouter(h, user.ID)

	for _, body := range []string{`{"amount":"abc"}`, `{"amount":"-5.00"}`, `{"amount":"1.234"}`, `{}`} {
		w := doJSON(router, http.MethodPost, "/wallet/deposit", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body %s", body)
	}
}

func TestWalletDefaultsToZeroBalance(t *testing.T) {
	h, db := newTestHandler(t)
	user := seedAPIUser(t, db)
	router := newTestRouter(h, user.ID)

	w := doJSON(router, http.MethodGet, "/wallet", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var acct models.CashAccount
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &acct))
	assert.True(t, acct.Balance.IsZero())
}
