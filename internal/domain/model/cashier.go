package model

// レジ担当
type Cashier struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"type:varchar(255);not null" json:"firstName"`
	LastName  string `gorm:"type:varchar(255);not null" json:"lastName"`

	Orders []Order `gorm:"foreignKey:CashierID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}
