package model

import "github.com/shopspring/decimal"

func init() {
	// 価格は文字列ではなく数値としてJSONに出す
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName string          `gorm:"type:varchar(255);not null" json:"productName"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Brand       string          `gorm:"type:varchar(255);not null" json:"brand"`
	CategoryID  int64           `gorm:"not null;index" json:"categoryId"`

	//Joins/Preload したときだけ入る
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
