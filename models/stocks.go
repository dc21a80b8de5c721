package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Stock struct {
	gorm.Model
	Ticker    string          `gorm:"size:80;uniqueIndex;not null" json:"ticker"`
	Company   string          `gorm:"size:120;uniqueIndex;not null" json:"company"`
	Price     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"price"`
	Available int             `gorm:"not null" json:"available"`
}
