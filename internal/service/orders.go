package service

import (
	"context"
	"fmt"

	"shop_system/internal/domain"
	"shop_system/internal/store"
)

type OrderService struct {
	store *store.Store
}

func NewOrderService(st *store.Store) *OrderService {
	return &OrderService{store: st}
}

// History returns every order of the user, newest first
func (s *OrderService) History(ctx context.Context, userID uint) ([]domain.Order, error) {
	orders, err := s.store.Orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}

func (s *OrderService) HistoryPage(ctx context.Context, userID uint, p store.Page) (Paged[domain.Order], error) {
	orders, total, err := s.store.Orders.PageByUser(ctx, userID, p)
	if err != nil {
		return Paged[domain.Order]{}, fmt.Errorf("list orders: %w", err)
	}
	return newPaged(orders, total, p), nil
}
