package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order records one purchased cart line. Price is what was paid for the whole
// line (unit price at purchase time times quantity).
type Order struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	UserID      uint            `gorm:"index;not null" json:"user_id"`
	ProductID   uint            `gorm:"index;not null" json:"product"`
	Product     Product         `gorm:"constraint:OnDelete:CASCADE;" json:"-"`
	Quantity    int64           `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	PurchasedAt time.Time       `gorm:"column:date_of_purchase;index;not null" json:"date_of_purchase"`
}
