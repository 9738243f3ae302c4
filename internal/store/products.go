package store

import (
	"context"

	"shop_system/internal/domain"

	"gorm.io/gorm"
)

// ProductFilter narrows a catalog listing. Empty fields match everything.
type ProductFilter struct {
	Category string
	Brand    string
}

type ProductRepository struct {
	db *gorm.DB
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	return p, notFound(err)
}

// ListAll returns the whole catalog in insertion order
func (r *ProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error
	return products, err
}

// List returns a page of products matching f
func (r *ProductRepository) List(ctx context.Context, f ProductFilter, p Page) ([]domain.Product, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Product{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Brand != "" {
		q = q.Where("brand = ?", f.Brand)
	}

	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var products []domain.Product
	err := q.Session(&gorm.Session{}).
		Order("id asc").
		Offset(p.Offset()).
		Limit(p.Size).
		Find(&products).Error
	return products, total, err
}

// DecreaseStockIfEnough takes qty units off the product's stock only when at
// least qty are left. It reports false, without error, when stock is short.
func (r *ProductRepository) DecreaseStockIfEnough(ctx context.Context, id uint, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Product{}).
		Where("id = ? AND no_of_stocks >= ?", id, qty).
		Update("no_of_stocks", gorm.Expr("no_of_stocks - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
