package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb, mr
}

func TestCacheSetGetDelete(t *testing.T) {
	rdb, mr := newRedis(t)
	ctx := context.Background()

	var got map[string]int
	found, err := GetCache(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetCache(ctx, rdb, "k", map[string]int{"a": 1}, time.Minute))
	found, err = GetCache(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, got["a"])

	mr.FastForward(2 * time.Minute)
	found, err = GetCache(ctx, rdb, "k", &got)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetCache(ctx, rdb, "k", 1, time.Minute))
	require.NoError(t, DeleteCache(ctx, rdb, "k"))
	assert.False(t, mr.Exists("k"))
}

func TestDeleteCachePrefix(t *testing.T) {
	rdb, mr := newRedis(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(AdminUsersPrefix+"page=1", "x"))
	require.NoError(t, mr.Set(AdminUsersPrefix+"page=2", "x"))
	require.NoError(t, mr.Set(WalletKey(3), "x"))

	require.NoError(t, DeleteCachePrefix(ctx, rdb, AdminUsersPrefix))

	assert.False(t, mr.Exists(AdminUsersPrefix+"page=1"))
	assert.False(t, mr.Exists(AdminUsersPrefix+"page=2"))
	assert.True(t, mr.Exists("wallet:user:3"))
}

func TestNilClientDisablesCache(t *testing.T) {
	ctx := context.Background()
	var dest int
	found, err := GetCache(ctx, nil, "k", &dest)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetCache(ctx, nil, "k", 1, time.Minute))
	assert.NoError(t, DeleteCachePrefix(ctx, nil, "k"))
	assert.Equal(t, "product:9", ProductKey(9))
}
