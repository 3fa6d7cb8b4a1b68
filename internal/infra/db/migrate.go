package db

import (
	"cornerstore/internal/domain/model"

	"gorm.io/gorm"
)

// Migrate はテーブルとFKを作る（親テーブルから順に）。
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Category{},
		&model.Product{},
		&model.Cashier{},
		&model.Order{},
		&model.OrderProduct{},
	)
}
