package repository

import (
	"context"

	"cornerstore/internal/domain/model"
)

type CashierRepository interface {
	//Orders → OrderProducts → Product まで読み込む
	FindByID(ctx context.Context, id int64) (model.Cashier, error)
	Create(ctx context.Context, c model.Cashier) (model.Cashier, error)
}
