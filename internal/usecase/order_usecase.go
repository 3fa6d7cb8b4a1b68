package usecase

import (
	"context"
	"time"

	repo "cornerstore/internal/repository"

	"github.com/pkg/errors"
)

type OrderUsecase struct {
	orders repo.OrderRepository
	tx     repo.TransactionManager
}

func NewOrderUsecase(orders repo.OrderRepository, tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{orders: orders, tx: tx}
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return OrderOutput{}, notFound()
	}
	if err != nil {
		return OrderOutput{}, dbError(err, "find order")
	}
	return toOrderOutput(o, true)
}

// paidOn があればその日に支払われた注文だけ
func (u *OrderUsecase) ListOrders(ctx context.Context, paidOn *time.Time) ([]OrderOutput, error) {
	items, err := u.orders.List(ctx, repo.OrderListFilter{PaidOn: paidOn})
	if err != nil {
		return nil, dbError(err, "list orders")
	}

	out := make([]OrderOutput, 0, len(items))
	for _, o := range items {
		oo, err := toOrderOutput(o, true)
		if err != nil {
			return nil, err
		}
		out = append(out, oo)
	}
	return out, nil
}

// 明細→注文の順に消す。注文が無ければロールバックして404
func (u *OrderUsecase) DeleteOrder(ctx context.Context, orderID int64) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.OrderProducts().DeleteByOrderID(ctx, orderID); err != nil {
			return dbError(err, "delete order products")
		}

		err := r.Orders().Delete(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound()
		}
		if err != nil {
			return dbError(err, "delete order")
		}
		return nil
	})
}
