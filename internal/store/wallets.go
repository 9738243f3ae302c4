package store

import (
	"context"
	"errors"

	"shop_system/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type WalletRepository struct {
	db *gorm.DB
}

// GetOrCreate returns the user's wallet, creating an empty one on first access
func (r *WalletRepository) GetOrCreate(ctx context.Context, userID uint) (domain.Wallet, error) {
	var w domain.Wallet
	err := r.db.WithContext(ctx).
		Where(domain.Wallet{UserID: userID}).
		Attrs(domain.Wallet{Balance: decimal.Zero}).
		FirstOrCreate(&w).Error
	if err == nil {
		return w, nil
	}
	// A concurrent first access may have won the unique index on user_id.
	if again := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&w).Error; again == nil {
		return w, nil
	}
	return domain.Wallet{}, err
}

func (r *WalletRepository) FindByUserID(ctx context.Context, userID uint) (domain.Wallet, error) {
	var w domain.Wallet
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&w).Error
	return w, notFound(err)
}

func (r *WalletRepository) FindByID(ctx context.Context, id uint) (domain.Wallet, error) {
	var w domain.Wallet
	err := r.db.WithContext(ctx).First(&w, id).Error
	return w, notFound(err)
}

// Credit adds amount in a single additive update
func (r *WalletRepository) Credit(ctx context.Context, walletID uint, amount decimal.Decimal) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Wallet{}).
		Where("id = ?", walletID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DebitIfEnough subtracts amount only when the balance covers it. It reports
// false, without error, when the balance is short.
func (r *WalletRepository) DebitIfEnough(ctx context.Context, walletID uint, amount decimal.Decimal) (bool, error) {
	if amount.IsNegative() {
		return false, errors.New("debit amount must not be negative")
	}
	res := r.db.WithContext(ctx).
		Model(&domain.Wallet{}).
		Where("id = ? AND balance >= ?", walletID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
