package users_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sofili-studio/studio-backend/internal/users"
)

func setupCache(t *testing.T) (*users.Cache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return users.NewCache(client, time.Minute), mr
}

type countingReader struct {
	byID  map[string]*users.User
	calls int
}

func (c *countingReader) GetByID(_ context.Context, id string) (*users.User, error) {
	c.calls++
	u, ok := c.byID[id]
	if !ok {
		return nil, users.ErrNotFound
	}
	return u, nil
}

func TestCacheRoundTrip(t *testing.T) {
	cache, _ := setupCache(t)
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		u, err := cache.Get(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, u)
	})

	t.Run("set then get", func(t *testing.T) {
		want := &users.User{ID: "u1", Phone: "0912345678", Name: "abc", IsAdmin: true}
		require.NoError(t, cache.Set(ctx, want))

		got, err := cache.Get(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Phone, got.Phone)
		assert.True(t, got.IsAdmin)
	})

	t.Run("invalidate", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, &users.User{ID: "u2", Phone: "0987654321"}))
		require.NoError(t, cache.Invalidate(ctx, "u2"))

		got, err := cache.Get(ctx, "u2")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestCachedReader(t *testing.T) {
	cache, mr := setupCache(t)
	ctx := context.Background()

	store := &countingReader{byID: map[string]*users.User{
		"u1": {ID: "u1", Phone: "0912345678", Name: "abc", IsAdmin: true},
	}}
	reader := users.NewCachedReader(cache, store)

	t.Run("first read hits the store and fills the cache", func(t *testing.T) {
		u, err := reader.GetByID(ctx, "u1")
		require.NoError(t, err)
		assert.True(t, u.IsAdmin)
		assert.Equal(t, 1, store.calls)
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		_, err := reader.GetByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 1, store.calls)
	})

	t.Run("expiry falls back to the store", func(t *testing.T) {
		mr.FastForward(2 * time.Minute)

		_, err := reader.GetByID(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 2, store.calls)
	})

	t.Run("unknown users are not cached", func(t *testing.T) {
		_, err := reader.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, users.ErrNotFound)

		_, err = reader.GetByID(ctx, "ghost")
		assert.ErrorIs(t, err, users.ErrNotFound)
	})
}
