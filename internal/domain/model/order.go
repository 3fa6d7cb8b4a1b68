package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// 明細のProductが読み込まれていないとTotalは計算できない
var ErrProductNotLoaded = errors.New("order product has no product loaded")

type Order struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	CashierID  int64      `gorm:"not null;index" json:"cashierId"`
	PaidOnDate *time.Time `gorm:"index" json:"paidOnDate"`

	Cashier *Cashier `gorm:"foreignKey:CashierID" json:"-"`

	//注文を消すと明細も消える
	OrderProducts []OrderProduct `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

// Total は明細の price * quantity の合計。
// 保存はせず、読み込み済みの明細と商品から毎回計算する。明細0件なら0。
func (o Order) Total() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, op := range o.OrderProducts {
		if op.Product == nil {
			return decimal.Decimal{}, fmt.Errorf("order %d, line %d: %w", o.ID, op.ID, ErrProductNotLoaded)
		}
		total = total.Add(op.Product.Price.Mul(decimal.NewFromInt(op.Quantity)))
	}
	return total, nil
}
