package domain

// CartLine is a pending (product, quantity) selection. A user holds at most
// one line per product.
type CartLine struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	UserID    uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID uint    `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Product   Product `gorm:"constraint:OnDelete:CASCADE;" json:"product"`
	Quantity  int64   `gorm:"not null" json:"quantity"`
}
