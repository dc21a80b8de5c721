package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CashAccount holds a user's wallet balance. One row per user, created
// lazily on first deposit. Balance never goes below zero.
type CashAccount struct {
	gorm.Model
	UserID  uint            `gorm:"uniqueIndex;not null" json:"user_id"`
	Balance decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"balance"`
}

// Portfolio is a user's held quantity of one stock. At most one row per
// (user, stock) pair; a row may sit at quantity zero until deleted.
type Portfolio struct {
	gorm.Model
	UserID   uint `gorm:"uniqueIndex:uq_portfolio_user_stock;not null" json:"user_id"`
	StockID  uint `gorm:"uniqueIndex:uq_portfolio_user_stock;not null" json:"stock_id"`
	Quantity int  `gorm:"not null" json:"quantity"`
}
