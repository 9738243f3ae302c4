package service_test

import (
	"context"
	"testing"

	"shop_system/internal/domain"
	"shop_system/internal/service"
	"shop_system/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func register(t *testing.T, e *env, in service.RegisterInput) (domain.User, error) {
	t.Helper()
	if in.Password == "" {
		in.Password = "password123"
	}
	return e.svc.Auth.Register(context.Background(), in)
}

func TestRegisterCustomer(t *testing.T) {
	e := newEnv(t)

	u, err := register(t, e, service.RegisterInput{Username: "Alice", Email: "a@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, domain.RoleCustomer, u.Role)
	assert.NotEqual(t, "password123", u.Password)

	_, err = register(t, e, service.RegisterInput{Username: "ALICE"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegisterAdminNeedsKey(t *testing.T) {
	e := newEnv(t)

	_, err := register(t, e, service.RegisterInput{Username: "root", UserType: domain.RoleAdmin})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = register(t, e, service.RegisterInput{Username: "root", UserType: domain.RoleAdmin, AdminKey: "nope"})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	u, err := register(t, e, service.RegisterInput{Username: "root", UserType: domain.RoleAdmin, AdminKey: "let-me-in"})
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())

	_, err = register(t, e, service.RegisterInput{Username: "other", UserType: "superuser"})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

func TestRegisterAdminDisabledWithoutConfiguredKey(t *testing.T) {
	e := newEnv(t)
	auth := service.NewAuthService(e.store, "test-secret", 0, 0, "")

	_, err := auth.Register(context.Background(), service.RegisterInput{
		Username: "root",
		Password: "password123",
		UserType: domain.RoleAdmin,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLoginAndRefresh(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	u, err := register(t, e, service.RegisterInput{Username: "alice"})
	require.NoError(t, err)

	_, err = e.svc.Auth.Login(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, err = e.svc.Auth.Login(ctx, "nobody", "password123")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	pair, err := e.svc.Auth.Login(ctx, "Alice", "password123")
	require.NoError(t, err)
	claims, err := utils.ParseTokenOfType(pair.Access, "test-secret", utils.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	access, err := e.svc.Auth.Refresh(ctx, pair.Refresh)
	require.NoError(t, err)
	claims, err = utils.ParseTokenOfType(access, "test-secret", utils.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)

	_, err = e.svc.Auth.Refresh(ctx, pair.Access)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
