package db

import (
	"context"
	"fmt"
	"time"

	"cornerstore/internal/domain/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// 初期データ（デモ用）
func seedData() (categories []model.Category, products []model.Product, cashiers []model.Cashier, orders []model.Order, lines []model.OrderProduct) {
	paid := time.Date(2023, time.July, 18, 0, 0, 0, 0, time.UTC)

	categories = []model.Category{
		{ID: 1, CategoryName: "Beverages"},
		{ID: 2, CategoryName: "Snacks"},
		{ID: 3, CategoryName: "Candy"},
	}
	products = []model.Product{
		{ID: 1, ProductName: "Cola", Price: decimal.RequireFromString("1.99"), Brand: "Coca-Cola", CategoryID: 1},
		{ID: 2, ProductName: "Potato Chips", Price: decimal.RequireFromString("2.99"), Brand: "Lays", CategoryID: 2},
		{ID: 3, ProductName: "Chocolate Bar", Price: decimal.RequireFromString("1.50"), Brand: "Hershey's", CategoryID: 3},
		{ID: 4, ProductName: "Energy Drink", Price: decimal.RequireFromString("3.49"), Brand: "Monster", CategoryID: 1},
		{ID: 5, ProductName: "Pretzels", Price: decimal.RequireFromString("2.49"), Brand: "Rold Gold", CategoryID: 2},
	}
	cashiers = []model.Cashier{
		{ID: 1, FirstName: "John", LastName: "Doe"},
		{ID: 2, FirstName: "Jane", LastName: "Smith"},
	}
	orders = []model.Order{
		{ID: 1, CashierID: 1, PaidOnDate: &paid},
		{ID: 2, CashierID: 2, PaidOnDate: nil},
	}
	lines = []model.OrderProduct{
		{ID: 1, OrderID: 1, ProductID: 1, Quantity: 2},
		{ID: 2, OrderID: 1, ProductID: 2, Quantity: 1},
		{ID: 3, OrderID: 2, ProductID: 3, Quantity: 3},
		{ID: 4, OrderID: 2, ProductID: 4, Quantity: 1},
	}
	return
}

// Seed は categories が空のときだけ初期データを入れる。
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&model.Category{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		categories, products, cashiers, orders, lines := seedData()
		for _, rows := range []interface{}{&categories, &products, &cashiers, &orders, &lines} {
			if err := tx.Create(rows).Error; err != nil {
				return fmt.Errorf("seed: %w", err)
			}
		}

		//IDを明示して入れたので、postgresはシーケンスを進めておく
		if tx.Dialector.Name() == "postgres" {
			for _, table := range []string{"categories", "products", "cashiers", "orders", "order_products"} {
				sql := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))", table, table)
				if err := tx.Exec(sql).Error; err != nil {
					return fmt.Errorf("seed: reset sequence %s: %w", table, err)
				}
			}
		}
		return nil
	})
}
