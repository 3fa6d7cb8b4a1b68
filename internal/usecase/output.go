package usecase

import (
	"net/http"
	"time"

	"cornerstore/internal/domain/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// レスポンスは木構造で返す。子は親を埋め込まず、親のIDだけ持つ。

type CategoryOutput struct {
	ID           int64  `json:"id"`
	CategoryName string `json:"categoryName"`
}

type ProductOutput struct {
	ID          int64           `json:"id"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Brand       string          `json:"brand"`
	CategoryID  int64           `json:"categoryId"`
	Category    *CategoryOutput `json:"category,omitempty"`
}

// 注文に埋め込むときの Cashier（orders は持たない）
type CashierSummaryOutput struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type CashierOutput struct {
	ID        int64         `json:"id"`
	FirstName string        `json:"firstName"`
	LastName  string        `json:"lastName"`
	Orders    []OrderOutput `json:"orders"`
}

type OrderProductOutput struct {
	ID        int64          `json:"id"`
	OrderID   int64          `json:"orderId"`
	ProductID int64          `json:"productId"`
	Quantity  int64          `json:"quantity"`
	Product   *ProductOutput `json:"product"`
}

type OrderOutput struct {
	ID            int64                 `json:"id"`
	CashierID     int64                 `json:"cashierId"`
	Cashier       *CashierSummaryOutput `json:"cashier,omitempty"`
	OrderProducts []OrderProductOutput  `json:"orderProducts"`
	Total         decimal.Decimal       `json:"total"`
	PaidOnDate    *time.Time            `json:"paidOnDate"`
}

func toCategoryOutput(c *model.Category) *CategoryOutput {
	if c == nil {
		return nil
	}
	return &CategoryOutput{ID: c.ID, CategoryName: c.CategoryName}
}

func toProductOutput(p model.Product) ProductOutput {
	return ProductOutput{
		ID:          p.ID,
		ProductName: p.ProductName,
		Price:       p.Price,
		Brand:       p.Brand,
		CategoryID:  p.CategoryID,
		Category:    toCategoryOutput(p.Category),
	}
}

// withCashier=false は Cashier の下に入れるとき
func toOrderOutput(o model.Order, withCashier bool) (OrderOutput, error) {
	total, err := o.Total()
	if err != nil {
		return OrderOutput{}, &HTTPError{
			Status:  http.StatusInternalServerError,
			Message: "order total unavailable",
			Err:     errors.WithStack(err),
		}
	}

	out := OrderOutput{
		ID:            o.ID,
		CashierID:     o.CashierID,
		OrderProducts: make([]OrderProductOutput, 0, len(o.OrderProducts)),
		Total:         total,
		PaidOnDate:    o.PaidOnDate,
	}
	if withCashier && o.Cashier != nil {
		out.Cashier = &CashierSummaryOutput{
			ID:        o.Cashier.ID,
			FirstName: o.Cashier.FirstName,
			LastName:  o.Cashier.LastName,
		}
	}

	for _, op := range o.OrderProducts {
		line := OrderProductOutput{
			ID:        op.ID,
			OrderID:   op.OrderID,
			ProductID: op.ProductID,
			Quantity:  op.Quantity,
		}
		if op.Product != nil {
			p := toProductOutput(*op.Product)
			line.Product = &p
		}
		out.OrderProducts = append(out.OrderProducts, line)
	}
	return out, nil
}

func toCashierOutput(c model.Cashier) (CashierOutput, error) {
	out := CashierOutput{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Orders:    make([]OrderOutput, 0, len(c.Orders)),
	}
	for _, o := range c.Orders {
		oo, err := toOrderOutput(o, false)
		if err != nil {
			return CashierOutput{}, err
		}
		out.Orders = append(out.Orders, oo)
	}
	return out, nil
}
