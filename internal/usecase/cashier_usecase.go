package usecase

import (
	"context"

	"cornerstore/internal/domain/model"
	repo "cornerstore/internal/repository"

	"github.com/pkg/errors"
)

type CashierUsecase struct {
	cashiers repo.CashierRepository
}

func NewCashierUsecase(cashiers repo.CashierRepository) *CashierUsecase {
	return &CashierUsecase{cashiers: cashiers}
}

type CreateCashierInput struct {
	FirstName string
	LastName  string
}

// GET /cashiers/{id}。注文→明細→商品まで入れて返す
func (u *CashierUsecase) GetCashier(ctx context.Context, id int64) (CashierOutput, error) {
	c, err := u.cashiers.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return CashierOutput{}, notFound()
	}
	if err != nil {
		return CashierOutput{}, dbError(err, "find cashier")
	}
	return toCashierOutput(c)
}

func (u *CashierUsecase) CreateCashier(ctx context.Context, in CreateCashierInput) (CashierOutput, error) {
	c, err := u.cashiers.Create(ctx, model.Cashier{
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		return CashierOutput{}, dbError(err, "create cashier")
	}
	return toCashierOutput(c)
}
