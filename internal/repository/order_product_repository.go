package repository

import "context"

type OrderProductRepository interface {
	DeleteByOrderID(ctx context.Context, orderID int64) (int64, error)
}
