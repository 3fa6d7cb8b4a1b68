package model

// 注文の明細（Order と Product の中間）
type OrderProduct struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64 `gorm:"not null;index" json:"orderId"`
	ProductID int64 `gorm:"not null;index" json:"productId"`
	Quantity  int64 `gorm:"not null" json:"quantity"`

	Order   *Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product *Product `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
