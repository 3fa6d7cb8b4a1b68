package repository

import (
	"context"
	"errors"

	"cornerstore/internal/domain/model"
	repo "cornerstore/internal/repository"

	"gorm.io/gorm"
)

type CashierGormRepository struct {
	db *gorm.DB
}

func NewCashierGormRepository(db *gorm.DB) *CashierGormRepository {
	return &CashierGormRepository{db: db}
}

// Orders → OrderProducts → Product まで読み込んで返す
func (r *CashierGormRepository) FindByID(ctx context.Context, id int64) (model.Cashier, error) {
	var c model.Cashier
	err := r.db.WithContext(ctx).
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("orders.id asc")
		}).
		Preload("Orders.OrderProducts", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_products.id asc")
		}).
		Preload("Orders.OrderProducts.Product").
		First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Cashier{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Cashier{}, err
	}
	return c, nil
}

func (r *CashierGormRepository) Create(ctx context.Context, c model.Cashier) (model.Cashier, error) {
	c.Orders = nil
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return model.Cashier{}, err
	}
	return c, nil
}
