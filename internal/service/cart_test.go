package service_test

import (
	"context"
	"testing"

	"shop_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartIsAdditive(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "alice")
	p := e.product(t, "Racket", "Yonex", "10", 1)

	require.NoError(t, e.svc.Cart.AddToCart(ctx, u.ID, p.ID, 1))
	require.NoError(t, e.svc.Cart.AddToCart(ctx, u.ID, p.ID, 4))

	view, err := e.svc.Cart.View(ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.EqualValues(t, 5, view.Items[0].Quantity)
	assert.Equal(t, "50.00", view.Items[0].LineTotal.StringFixed(2))
	assert.Equal(t, "50.00", view.Total.StringFixed(2))
}

func TestAddToCartValidation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "alice")
	p := e.product(t, "Racket", "Yonex", "10", 1)

	assert.ErrorIs(t, e.svc.Cart.AddToCart(ctx, u.ID, p.ID, 0), domain.ErrBadRequest)
	assert.ErrorIs(t, e.svc.Cart.AddToCart(ctx, u.ID, p.ID, -2), domain.ErrBadRequest)

	err := e.svc.Cart.AddToCart(ctx, u.ID, 999, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, "Product not found", err.Error())
}

func TestCartViewEmpty(t *testing.T) {
	e := newEnv(t)
	u := e.user(t, "alice")

	view, err := e.svc.Cart.View(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.True(t, view.Total.IsZero())
}

func TestCartRemove(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u := e.user(t, "alice")
	p := e.product(t, "Racket", "Yonex", "10", 1)
	require.NoError(t, e.svc.Cart.AddToCart(ctx, u.ID, p.ID, 1))

	require.NoError(t, e.svc.Cart.Remove(ctx, u.ID, p.ID))
	assert.Zero(t, e.cartSize(t, u.ID))
	assert.ErrorIs(t, e.svc.Cart.Remove(ctx, u.ID, p.ID), domain.ErrNotFound)
}
