package service

import (
	"context"
	"fmt"

	"shop_system/internal/domain"
	"shop_system/internal/store"
)

// UserSummary is a user as listed to admins
type UserSummary struct {
	ID       uint           `json:"id"`
	Username string         `json:"username"`
	Role     string         `json:"role"`
	Wallet   *domain.Wallet `json:"wallet"`
}

type AdminService struct {
	store *store.Store
}

func NewAdminService(st *store.Store) *AdminService {
	return &AdminService{store: st}
}

// Users pages through all users with their wallet, nil when never created
func (s *AdminService) Users(ctx context.Context, p store.Page) (Paged[UserSummary], error) {
	users, total, err := s.store.Users.ListWithWallets(ctx, p)
	if err != nil {
		return Paged[UserSummary]{}, fmt.Errorf("list users: %w", err)
	}
	res := make([]UserSummary, len(users))
	for i, u := range users {
		res[i] = UserSummary{ID: u.ID, Username: u.Username, Role: u.Role, Wallet: u.Wallet}
	}
	return newPaged(res, total, p), nil
}

// Transactions pages through ledger entries of every wallet
func (s *AdminService) Transactions(ctx context.Context, f store.TransactionFilter, p store.Page) (Paged[domain.Transaction], error) {
	txs, total, err := s.store.Transactions.Search(ctx, f, p)
	if err != nil {
		return Paged[domain.Transaction]{}, fmt.Errorf("list transactions: %w", err)
	}
	return newPaged(txs, total, p), nil
}

// IsAdmin re-reads the user's role from the database
func (s *AdminService) IsAdmin(ctx context.Context, userID uint) (bool, error) {
	u, err := s.store.Users.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return u.IsAdmin(), nil
}
