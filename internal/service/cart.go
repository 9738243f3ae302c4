package service

import (
	"context"
	"errors"
	"fmt"

	"shop_system/internal/domain"
	"shop_system/internal/store"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// CartItem is one cart line priced at the current catalog price
type CartItem struct {
	Product   domain.Product  `json:"product"`
	Quantity  int64           `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// CartView is the caller's cart with its running total
type CartView struct {
	Items []CartItem      `json:"items"`
	Total decimal.Decimal `json:"total_price"`
}

type CartService struct {
	store *store.Store
}

func NewCartService(st *store.Store) *CartService {
	return &CartService{store: st}
}

// AddToCart adds quantity units of a product to the user's cart. Stock is not
// checked until checkout.
func (s *CartService) AddToCart(ctx context.Context, userID, productID uint, quantity int64) error {
	if quantity < 1 {
		return domain.WithReason(domain.ErrBadRequest, "Quantity must be at least 1")
	}
	if _, err := s.store.Products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.WithReason(domain.ErrNotFound, "Product not found")
		}
		return fmt.Errorf("find product: %w", err)
	}
	if err := s.store.Carts.AddQuantity(ctx, userID, productID, quantity); err != nil {
		return fmt.Errorf("add to cart: %w", err)
	}
	logrus.WithFields(logrus.Fields{
		"user_id":    userID,
		"product_id": productID,
		"quantity":   quantity,
	}).Debug("Product added to cart")
	return nil
}

func (s *CartService) View(ctx context.Context, userID uint) (CartView, error) {
	lines, err := s.store.Carts.ListByUser(ctx, userID)
	if err != nil {
		return CartView{}, fmt.Errorf("list cart: %w", err)
	}
	view := CartView{Items: make([]CartItem, 0, len(lines)), Total: decimal.Zero}
	for _, l := range lines {
		lineTotal := l.Product.Price.Mul(decimal.NewFromInt(l.Quantity))
		view.Items = append(view.Items, CartItem{Product: l.Product, Quantity: l.Quantity, LineTotal: lineTotal})
		view.Total = view.Total.Add(lineTotal)
	}
	return view, nil
}

func (s *CartService) Remove(ctx context.Context, userID, productID uint) error {
	err := s.store.Carts.RemoveLine(ctx, userID, productID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.WithReason(domain.ErrNotFound, "Product not in cart")
	}
	if err != nil {
		return fmt.Errorf("remove cart line: %w", err)
	}
	return nil
}
