// Package store holds the GORM-backed repositories. Every method takes the
// request context; WithinTx rebuilds the repositories on a transaction handle
// so a service can run several of them atomically.
package store

import (
	"context"
	"errors"

	"shop_system/internal/domain"

	"gorm.io/gorm"
)

// Store groups the repositories sharing one database handle
type Store struct {
	db *gorm.DB

	Users        *UserRepository
	Wallets      *WalletRepository
	Transactions *TransactionRepository
	Products     *ProductRepository
	Carts        *CartRepository
	Orders       *OrderRepository
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:           db,
		Users:        &UserRepository{db: db},
		Wallets:      &WalletRepository{db: db},
		Transactions: &TransactionRepository{db: db},
		Products:     &ProductRepository{db: db},
		Carts:        &CartRepository{db: db},
		Orders:       &OrderRepository{db: db},
	}
}

// WithinTx runs fn inside one database transaction. Returning an error from fn
// rolls back everything fn did through tx.
func (s *Store) WithinTx(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// Ping checks that the database answers
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Page selects a 1-based page of a listing
type Page struct {
	Number int
	Size   int
}

func (p Page) Offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

// TotalPages is the number of pages needed for total rows
func (p Page) TotalPages(total int64) int {
	if p.Size <= 0 {
		return 0
	}
	return (int(total) + p.Size - 1) / p.Size
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
