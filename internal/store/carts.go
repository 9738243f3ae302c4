package store

import (
	"context"

	"shop_system/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartRepository struct {
	db *gorm.DB
}

// AddQuantity inserts a cart line or, when the user already has one for the
// product, grows its quantity in the same statement
func (r *CartRepository) AddQuantity(ctx context.Context, userID, productID uint, qty int64) error {
	line := domain.CartLine{UserID: userID, ProductID: productID, Quantity: qty}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]any{"quantity": gorm.Expr("quantity + ?", qty)}),
		}).
		Create(&line).Error
}

func (r *CartRepository) FindLine(ctx context.Context, userID, productID uint) (domain.CartLine, error) {
	var line domain.CartLine
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&line).Error
	return line, notFound(err)
}

// ListByUser returns the user's cart lines with products, oldest first
func (r *CartRepository) ListByUser(ctx context.Context, userID uint) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&lines).Error
	return lines, err
}

func (r *CartRepository) RemoveLine(ctx context.Context, userID, productID uint) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&domain.CartLine{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Clear deletes every cart line of the user
func (r *CartRepository) Clear(ctx context.Context, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&domain.CartLine{})
	return res.RowsAffected, res.Error
}
