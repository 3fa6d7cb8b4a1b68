package usecase

import (
	"context"
	"fmt"
	"net/http"

	"cornerstore/internal/domain/model"
	repo "cornerstore/internal/repository"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// DBエラーは500にして、元のエラーはログ用に残す
func dbError(err error, op string) error {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: "db error",
		Err:     errors.Wrap(err, op),
	}
}

func notFound() error {
	return NewHTTPError(http.StatusNotFound, "not found")
}

type ProductUsecase struct {
	productRepo repo.ProductRepository
	tx          repo.TransactionManager
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, tx repo.TransactionManager) *ProductUsecase {
	return &ProductUsecase{
		productRepo: productRepo,
		tx:          tx,
	}
}

// POST /products, PUT /products/{id} の入力
type ProductInput struct {
	ProductName string
	Price       decimal.Decimal
	Brand       string
	CategoryID  int64
}

// GET /products。searchが空なら全件
func (u *ProductUsecase) ListProducts(ctx context.Context, search string) ([]ProductOutput, error) {
	items, err := u.productRepo.List(ctx, repo.ProductListQuery{Search: search})
	if err != nil {
		return nil, dbError(err, "list products")
	}

	out := make([]ProductOutput, 0, len(items))
	for _, p := range items {
		out = append(out, toProductOutput(p))
	}
	return out, nil
}

// 入力チェックはしない。存在しないcategoryIdはFK違反で500になる
func (u *ProductUsecase) CreateProduct(ctx context.Context, in ProductInput) (ProductOutput, error) {
	p, err := u.productRepo.Create(ctx, model.Product{
		ProductName: in.ProductName,
		Price:       in.Price,
		Brand:       in.Brand,
		CategoryID:  in.CategoryID,
	})
	if err != nil {
		return ProductOutput{}, dbError(err, "create product")
	}
	return toProductOutput(p), nil
}

// 4項目をすべて上書きする（部分更新はしない）
func (u *ProductUsecase) UpdateProduct(ctx context.Context, productID int64, in ProductInput) error {
	return u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		p, err := r.Products().FindByID(ctx, productID)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound()
		}
		if err != nil {
			return dbError(err, "find product")
		}

		p.ProductName = in.ProductName
		p.Price = in.Price
		p.Brand = in.Brand
		p.CategoryID = in.CategoryID

		err = r.Products().Update(ctx, p)
		if errors.Is(err, repo.ErrNotFound) {
			return notFound()
		}
		if err != nil {
			return dbError(err, "update product")
		}
		return nil
	})
}
