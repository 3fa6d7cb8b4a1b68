package repository

import (
	"context"
	"time"

	"cornerstore/internal/domain/model"
)

type OrderListFilter struct {
	//この日（時刻は無視）に支払われた注文だけ。nilなら全件
	PaidOn *time.Time
}

// 取得系は Cashier / OrderProducts / Product / Category まで読み込んで返す。
type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	List(ctx context.Context, f OrderListFilter) ([]model.Order, error)
	Delete(ctx context.Context, orderID int64) error
}
