package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"cornerstore/internal/domain/model"
	repo "cornerstore/internal/repository"
	"cornerstore/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrderUsecase() (*usecase.OrderUsecase, *OrderRepoMock, *OrderProductRepoMock, *TxManagerMock) {
	oRepo := new(OrderRepoMock)
	opRepo := new(OrderProductRepoMock)
	tx := &TxManagerMock{Repos: &TxReposMock{orders: oRepo, orderProducts: opRepo}}
	tx.On("WithinTx", mock.Anything).Return()
	return usecase.NewOrderUsecase(oRepo, tx), oRepo, opRepo, tx
}

func seededOrder() model.Order {
	paid := time.Date(2023, time.July, 18, 0, 0, 0, 0, time.UTC)
	beverages := &model.Category{ID: 1, CategoryName: "Beverages"}
	snacks := &model.Category{ID: 2, CategoryName: "Snacks"}
	return model.Order{
		ID:         1,
		CashierID:  1,
		PaidOnDate: &paid,
		Cashier:    &model.Cashier{ID: 1, FirstName: "John", LastName: "Doe"},
		OrderProducts: []model.OrderProduct{
			{ID: 1, OrderID: 1, ProductID: 1, Quantity: 2,
				Product: &model.Product{ID: 1, ProductName: "Cola", Price: decimal.RequireFromString("1.99"), CategoryID: 1, Category: beverages}},
			{ID: 2, OrderID: 1, ProductID: 2, Quantity: 1,
				Product: &model.Product{ID: 2, ProductName: "Potato Chips", Price: decimal.RequireFromString("2.99"), CategoryID: 2, Category: snacks}},
		},
	}
}

func TestOrderUsecase_GetOrder(t *testing.T) {
	uc, oRepo, _, _ := newOrderUsecase()
	oRepo.On("FindByID", mock.Anything, int64(1)).Return(seededOrder(), nil)

	out, err := uc.GetOrder(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "6.97", out.Total.String())
	require.NotNil(t, out.Cashier)
	assert.Equal(t, "John", out.Cashier.FirstName)
	require.Len(t, out.OrderProducts, 2)
	require.NotNil(t, out.OrderProducts[1].Product)
	require.NotNil(t, out.OrderProducts[1].Product.Category)
	assert.Equal(t, "Snacks", out.OrderProducts[1].Product.Category.CategoryName)
}

func TestOrderUsecase_GetOrder_NotFound(t *testing.T) {
	uc, oRepo, _, _ := newOrderUsecase()
	oRepo.On("FindByID", mock.Anything, int64(5)).Return(nil, repo.ErrNotFound)

	_, err := uc.GetOrder(context.Background(), 5)
	requireHTTPStatus(t, err, http.StatusNotFound)
}

func TestOrderUsecase_GetOrder_ProductNotLoaded(t *testing.T) {
	uc, oRepo, _, _ := newOrderUsecase()

	o := seededOrder()
	o.OrderProducts[0].Product = nil
	oRepo.On("FindByID", mock.Anything, int64(1)).Return(o, nil)

	_, err := uc.GetOrder(context.Background(), 1)
	requireHTTPStatus(t, err, http.StatusInternalServerError)
	assert.ErrorIs(t, err, model.ErrProductNotLoaded)
}

func TestOrderUsecase_ListOrders_PassesDateFilter(t *testing.T) {
	uc, oRepo, _, _ := newOrderUsecase()

	day := time.Date(2023, time.July, 18, 0, 0, 0, 0, time.UTC)
	oRepo.On("List", mock.Anything, repo.OrderListFilter{PaidOn: &day}).Return([]model.Order{seededOrder()}, nil)

	out, err := uc.ListOrders(context.Background(), &day)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)

	oRepo.AssertExpectations(t)
}

func TestOrderUsecase_ListOrders_EmptyOrderTotalIsZero(t *testing.T) {
	uc, oRepo, _, _ := newOrderUsecase()
	oRepo.On("List", mock.Anything, repo.OrderListFilter{}).Return([]model.Order{{ID: 9, CashierID: 1}}, nil)

	out, err := uc.ListOrders(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Total.IsZero())
	assert.NotNil(t, out[0].OrderProducts)
}

func TestOrderUsecase_DeleteOrder(t *testing.T) {
	uc, oRepo, opRepo, tx := newOrderUsecase()

	opRepo.On("DeleteByOrderID", mock.Anything, int64(1)).Return(int64(2), nil)
	oRepo.On("Delete", mock.Anything, int64(1)).Return(nil)

	require.NoError(t, uc.DeleteOrder(context.Background(), 1))

	opRepo.AssertExpectations(t)
	oRepo.AssertExpectations(t)
	tx.AssertExpectations(t)
}

func TestOrderUsecase_DeleteOrder_NotFound(t *testing.T) {
	uc, oRepo, opRepo, _ := newOrderUsecase()

	opRepo.On("DeleteByOrderID", mock.Anything, int64(8)).Return(int64(0), nil)
	oRepo.On("Delete", mock.Anything, int64(8)).Return(repo.ErrNotFound)

	err := uc.DeleteOrder(context.Background(), 8)
	requireHTTPStatus(t, err, http.StatusNotFound)
}

func TestOrderUsecase_DeleteOrder_DBError(t *testing.T) {
	uc, oRepo, opRepo, _ := newOrderUsecase()

	opRepo.On("DeleteByOrderID", mock.Anything, int64(1)).Return(int64(0), errors.New("locked"))

	err := uc.DeleteOrder(context.Background(), 1)
	requireHTTPStatus(t, err, http.StatusInternalServerError)
	oRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
