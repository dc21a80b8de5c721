package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email     string `gorm:"size:120;uniqueIndex;not null" json:"email"`
	FirstName string `gorm:"size:120;not null" json:"first_name"`
	LastName  string `gorm:"size:120;not null" json:"last_name"`
	Password  string `gorm:"size:200;not null" json:"-"`
	IsAdmin   bool   `gorm:"not null;default:false" json:"is_admin"`

	CashAccount *CashAccount `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Portfolios  []Portfolio  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Orders      []Order      `json:"-"`
}
