package domain

import "github.com/shopspring/decimal"

// Wallet Model
type Wallet struct {
	ID      uint            `gorm:"primaryKey" json:"id"`                       // Primary key
	UserID  uint            `gorm:"uniqueIndex;not null" json:"user"`           // Foreign key to User
	Balance decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"balance"` // Wallet balance, never negative
}
