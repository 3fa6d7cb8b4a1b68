package repository

import (
	"context"

	"cornerstore/internal/domain/model"

	"gorm.io/gorm"
)

type OrderProductGormRepository struct {
	db *gorm.DB
}

func NewOrderProductGormRepository(db *gorm.DB) *OrderProductGormRepository {
	return &OrderProductGormRepository{db: db}
}

// 注文の明細をまとめて削除し、消した件数を返す
func (r *OrderProductGormRepository) DeleteByOrderID(ctx context.Context, orderID int64) (int64, error) {
	res := r.db.WithContext(ctx).Where("order_id = ?", orderID).Delete(&model.OrderProduct{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}
