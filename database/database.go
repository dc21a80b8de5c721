package database

import (
	"gorm.io/gorm"

	"stockcraft/models"
)

// AutoMigrate creates or updates the schema for every model. Users come
// first so the FK constraints on the owned tables resolve.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Stock{},
		&models.CashAccount{},
		&models.Portfolio{},
		&models.Order{},
		&models.Transaction{},
	)
}
