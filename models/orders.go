package models

import (
	"gorm.io/gorm"
)

// Order records an intent to acquire one unit of a stock. Placing one has
// no cash or position effect; cancelling removes it and its audit rows.
type Order struct {
	gorm.Model
	UserID  uint `gorm:"index;not null" json:"user_id"`
	StockID uint `gorm:"index;not null" json:"stock_id"`
}

// Transaction is the audit row written alongside an Order.
type Transaction struct {
	gorm.Model
	OrderID uint `gorm:"index;not null" json:"order_id"`
	UserID  uint `gorm:"index;not null" json:"user_id"`
	StockID uint `gorm:"not null" json:"stock_id"`
}
