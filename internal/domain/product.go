package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry. Stock never drops below zero.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Category    string          `gorm:"size:255;index;not null" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Description string          `gorm:"type:text" json:"description"`
	Stock       int64           `gorm:"column:no_of_stocks;not null" json:"no_of_stocks"`
	Brand       string          `gorm:"size:255;index;not null" json:"brand"`
}
