package repository

import (
	"context"
	"errors"
	"time"

	"cornerstore/internal/domain/model"
	repo "cornerstore/internal/repository"

	"gorm.io/gorm"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

// Cashier / OrderProducts → Product → Category をまとめて読み込む
func withOrderGraph(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Cashier").
		Preload("OrderProducts", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_products.id asc")
		}).
		Preload("OrderProducts.Product").
		Preload("OrderProducts.Product.Category")
}

func (r *OrderGormRepository) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	var o model.Order
	err := withOrderGraph(r.db.WithContext(ctx)).Where("orders.id = ?", orderID).First(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Order{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r *OrderGormRepository) List(ctx context.Context, f repo.OrderListFilter) ([]model.Order, error) {
	q := withOrderGraph(r.db.WithContext(ctx))

	//支払日で絞り込み（その日の 00:00 以上、翌日 00:00 未満）。NULLは含まれない
	if f.PaidOn != nil {
		from := startOfDay(*f.PaidOn)
		q = q.Where("orders.paid_on_date >= ? AND orders.paid_on_date < ?", from, from.AddDate(0, 0, 1))
	}

	var items []model.Order
	if err := q.Order("orders.id asc").Find(&items).Error; err != nil {
		return []model.Order{}, err
	}
	return items, nil
}

// 注文を削除。明細はFKのCASCADEでも消える
func (r *OrderGormRepository) Delete(ctx context.Context, orderID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Order{}, orderID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
