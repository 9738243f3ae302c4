package domain

import "github.com/shopspring/decimal"

// Ledger entry types
const (
	TransactionDeposit  = "deposit"
	TransactionPurchase = "purchase"
)

// Transaction Model, an immutable movement on a wallet
type Transaction struct {
	ID        uint            `gorm:"primaryKey" json:"id"`                         // Primary key
	WalletID  uint            `gorm:"index;not null" json:"wallet_id"`              // Wallet the amount moved on
	Amount    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`    // Always positive, direction comes from Type
	Type      string          `gorm:"size:16;index;not null" json:"type"`           // Transaction type: deposit, purchase
	CreatedAt int64           `gorm:"autoCreateTime:milli;index" json:"created_at"` // Timestamp of creation in milliseconds
}
