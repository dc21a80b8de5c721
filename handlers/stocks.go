package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"stockcraft/config"
	"stockcraft/models"
)

const quoteCacheExpiration = 5 * time.Minute

type StockInput struct {
	Ticker    string `json:"ticker" binding:"required"`
	Company   string `json:"company" binding:"required"`
	Price     string `json:"price" binding:"required"`
	Available int    `json:"available" binding:"required,min=1"`
}

func ListStocks(c *gin.Context) {
	var stocks []models.Stock
	if err := config.DB.Order("ticker ASC").Find(&stocks).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stocks"})
		return
	}
	c.JSON(http.StatusOK, stocks)
}

// AddStock registers a new tradable instrument. Admin only.
func AddStock(c *gin.Context) {
	var input StockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	price, err := decimal.NewFromString(input.Price)
	if err != nil || !price.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
		return
	}

	stock := models.Stock{
		Ticker:    input.Ticker,
		Company:   input.Company,
		Price:     price,
		Available: input.Available,
	}

	if err := config.DB.Create(&stock).Error; err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Ticker or company already exists"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Stock added successfully", "id": stock.ID})
}

// GetQuote serves the stored reference price through a Redis read-through
// cache.
func GetQuote(c *gin.Context) {
	stockID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock id"})
		return
	}

	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("stock:%d:price", stockID)

	if cached, err := config.Rdb.Get(ctx, cacheKey).Result(); err == nil {
		c.JSON(http.StatusOK, gin.H{"stock_id": stockID, "price": cached})
		return
	}

	var stock models.Stock
	if err := config.DB.First(&stock, stockID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stock not found"})
		return
	}

	price := stock.Price.StringFixed(2)
	if err := config.Rdb.Set(ctx, cacheKey, price, quoteCacheExpiration).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cache price"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"stock_id": stockID, "price": price})
}
