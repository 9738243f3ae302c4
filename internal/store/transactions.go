package store

import (
	"context"
	"time"

	"shop_system/internal/domain"

	"gorm.io/gorm"
)

// TransactionFilter narrows the admin ledger listing. Zero values disable a filter.
type TransactionFilter struct {
	UserID uint
	Type   string
	From   time.Time
	To     time.Time
}

type TransactionRepository struct {
	db *gorm.DB
}

func (r *TransactionRepository) Create(ctx context.Context, t *domain.Transaction) error {
	return r.db.WithContext(ctx).Create(t).Error
}

// ListByWallet returns a page of a wallet's ledger, newest first
func (r *TransactionRepository) ListByWallet(ctx context.Context, walletID uint, p Page) ([]domain.Transaction, int64, error) {
	return r.page(r.db.WithContext(ctx).Model(&domain.Transaction{}).Where("wallet_id = ?", walletID), p)
}

// Search applies f and returns a page of matching entries, newest first
func (r *TransactionRepository) Search(ctx context.Context, f TransactionFilter, p Page) ([]domain.Transaction, int64, error) {
	q := r.db.WithContext(ctx).Model(&domain.Transaction{})
	if f.UserID != 0 {
		q = q.Where("wallet_id IN (?)", r.db.Model(&domain.Wallet{}).Select("id").Where("user_id = ?", f.UserID))
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From.UnixMilli())
	}
	if !f.To.IsZero() {
		q = q.Where("created_at <= ?", f.To.UnixMilli())
	}
	return r.page(q, p)
}

// page counts and pages an already filtered query
func (r *TransactionRepository) page(q *gorm.DB, p Page) ([]domain.Transaction, int64, error) {
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var txs []domain.Transaction
	err := q.Session(&gorm.Session{}).
		Order("created_at desc").
		Order("id desc").
		Offset(p.Offset()).
		Limit(p.Size).
		Find(&txs).Error
	return txs, total, err
}
