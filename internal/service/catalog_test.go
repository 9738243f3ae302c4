package service_test

import (
	"context"
	"testing"

	"shop_system/internal/domain"
	"shop_system/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProductValidation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	base := service.NewProduct{Name: "Racket", Category: "gear", Brand: "Yonex", Price: decimal.NewFromInt(10), Stock: 1}

	bad := base
	bad.Price = decimal.Zero
	_, err := e.svc.Catalog.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	bad = base
	bad.Price = decimal.RequireFromString("1.999")
	_, err = e.svc.Catalog.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	bad = base
	bad.Stock = -1
	_, err = e.svc.Catalog.Create(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	p, err := e.svc.Catalog.Create(ctx, base)
	require.NoError(t, err)
	assert.NotZero(t, p.ID)
}

func TestCatalogQueries(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	racket := e.product(t, "Racket", "Yonex", "10", 1)
	e.product(t, "Shuttle", "Victor", "1", 1)
	_, err := e.svc.Catalog.Create(ctx, service.NewProduct{Name: "Shirt", Category: "apparel", Brand: "Yonex", Price: decimal.NewFromInt(5)})
	require.NoError(t, err)

	all, err := e.svc.Catalog.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := e.svc.Catalog.List(ctx, storePage(1, 2))
	require.NoError(t, err)
	assert.Len(t, page.Results, 2)
	assert.EqualValues(t, 3, page.Total)
	assert.Equal(t, 2, page.TotalPages)

	gear, err := e.svc.Catalog.ByCategory(ctx, "gear", "Yonex", storePage(1, 10))
	require.NoError(t, err)
	require.Len(t, gear.Results, 1)
	assert.Equal(t, racket.ID, gear.Results[0].ID)

	_, err = e.svc.Catalog.ByCategory(ctx, "", "", storePage(1, 10))
	assert.ErrorIs(t, err, domain.ErrBadRequest)

	got, err := e.svc.Catalog.Get(ctx, racket.ID)
	require.NoError(t, err)
	assert.Equal(t, "Racket", got.Name)
	_, err = e.svc.Catalog.Get(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderHistory(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "alice")
	p := e.product(t, "Racket", "Yonex", "1", 10)
	e.fund(t, u.ID, "10")

	empty, err := e.svc.Orders.History(ctx, u.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	e.purchase(t, u, p, 1, at("2024-09-27", "10:00"))
	e.purchase(t, u, p, 1, at("2024-09-28", "10:00"))
	e.purchase(t, u, p, 1, at("2024-09-29", "10:00"))

	all, err := e.svc.Orders.History(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := e.svc.Orders.HistoryPage(ctx, u.ID, storePage(1, 2))
	require.NoError(t, err)
	require.Len(t, page.Results, 2)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.Results[0].PurchasedAt.After(page.Results[1].PurchasedAt))
}

func TestAdminListings(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	a := e.user(t, "alice")
	e.user(t, "bob")
	e.fund(t, a.ID, "5")

	users, err := e.svc.Admin.Users(ctx, storePage(1, 10))
	require.NoError(t, err)
	require.Len(t, users.Results, 2)
	require.NotNil(t, users.Results[0].Wallet)
	assert.Equal(t, "5.00", users.Results[0].Wallet.Balance.StringFixed(2))
	assert.Nil(t, users.Results[1].Wallet)

	txs, err := e.svc.Admin.Transactions(ctx, storeFilter(a.ID, domain.TransactionDeposit), storePage(1, 10))
	require.NoError(t, err)
	assert.EqualValues(t, 1, txs.Total)

	ok, err := e.svc.Admin.IsAdmin(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}
