package service_test

import (
	"context"
	"testing"
	"time"

	"shop_system/internal/config"
	"shop_system/internal/domain"
	"shop_system/internal/service"
	"shop_system/internal/store"
	"shop_system/internal/testutil"

	"github.com/alicebob/miniredis/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, key string, v any) error {
	args := m.Called(ctx, key, v)
	return args.Error(0)
}

type env struct {
	store *store.Store
	svc   *service.Services
	pub   *mockPublisher
	mr    *miniredis.Miniredis
}

func newEnv(t *testing.T) *env {
	t.Helper()
	st := store.New(testutil.NewDB(t))
	rdb, mr := testutil.NewRedis(t)
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	cfg := &config.Config{
		JWTSecret:            "test-secret",
		AccessTTL:            time.Minute,
		RefreshTTL:           time.Hour,
		AdminRegistrationKey: "let-me-in",
		ReportTimezone:       "UTC",
	}
	return &env{store: st, svc: service.New(st, rdb, pub, cfg), pub: pub, mr: mr}
}

func (e *env) user(t *testing.T, name string) domain.User {
	t.Helper()
	u := domain.User{Username: name, Password: "x", Role: domain.RoleCustomer}
	require.NoError(t, e.store.Users.Create(context.Background(), &u))
	return u
}

func (e *env) product(t *testing.T, name, brand, price string, stock int64) domain.Product {
	t.Helper()
	p, err := e.svc.Catalog.Create(context.Background(), service.NewProduct{
		Name:     name,
		Category: "gear",
		Brand:    brand,
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
	})
	require.NoError(t, err)
	return p
}

func (e *env) fund(t *testing.T, userID uint, amount string) {
	t.Helper()
	_, err := e.svc.Wallet.TopUp(context.Background(), userID, decimal.RequireFromString(amount))
	require.NoError(t, err)
}

func (e *env) balance(t *testing.T, userID uint) string {
	t.Helper()
	w, err := e.store.Wallets.GetOrCreate(context.Background(), userID)
	require.NoError(t, err)
	return w.Balance.StringFixed(2)
}

func (e *env) stock(t *testing.T, productID uint) int64 {
	t.Helper()
	p, err := e.store.Products.FindByID(context.Background(), productID)
	require.NoError(t, err)
	return p.Stock
}

func (e *env) cartSize(t *testing.T, userID uint) int {
	t.Helper()
	lines, err := e.store.Carts.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	return len(lines)
}

func (e *env) orderCount(t *testing.T, userID uint) int {
	t.Helper()
	orders, err := e.store.Orders.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	return len(orders)
}

// purchase buys qty of p for u at the given time
func (e *env) purchase(t *testing.T, u domain.User, p domain.Product, qty int64, at time.Time) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.svc.Cart.AddToCart(ctx, u.ID, p.ID, qty))
	_, err := e.svc.Checkout.Checkout(ctx, u.ID, &at)
	require.NoError(t, err)
}

func storePage(number, size int) store.Page {
	return store.Page{Number: number, Size: size}
}

func storeFilter(userID uint, txType string) store.TransactionFilter {
	return store.TransactionFilter{UserID: userID, Type: txType}
}
