package store

import (
	"context"
	"time"

	"shop_system/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderRepository struct {
	db *gorm.DB
}

// CreateBatch inserts orders in one statement and fills their IDs
func (r *OrderRepository) CreateBatch(ctx context.Context, orders []domain.Order) error {
	if len(orders) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&orders).Error
}

// ListByUser returns all of a user's orders, newest first
func (r *OrderRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date_of_purchase desc").
		Order("id desc").
		Find(&orders).Error
	return orders, err
}

// PageByUser is ListByUser split into pages
func (r *OrderRepository) PageByUser(ctx context.Context, userID uint, p Page) ([]domain.Order, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Order{}).Where("user_id = ?", userID)

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var orders []domain.Order
	err := q.Session(&gorm.Session{}).
		Order("date_of_purchase desc").
		Order("id desc").
		Offset(p.Offset()).
		Limit(p.Size).
		Find(&orders).Error
	return orders, total, err
}

// ListPurchasedBetween returns orders with from <= date_of_purchase < to and
// their products, for report aggregation
func (r *OrderRepository) ListPurchasedBetween(ctx context.Context, from, to time.Time) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).
		Preload("Product").
		Where("date_of_purchase >= ? AND date_of_purchase < ?", from.UTC(), to.UTC()).
		Order("date_of_purchase asc").
		Order("id asc").
		Find(&orders).Error
	return orders, err
}
