package model

// 商品の分類（Beverages / Snacks など）
type Category struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	CategoryName string `gorm:"type:varchar(255);not null" json:"categoryName"`
}
