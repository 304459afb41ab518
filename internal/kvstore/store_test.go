package kvstore

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGormStore(t *testing.T) *GormStore {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	s, err := NewGormStore(db)
	require.NoError(t, err)
	return s
}

func setupRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "")
}

// storeContract runs the behavior every Store must share.
func storeContract(t *testing.T, s Store) {
	ctx := context.Background()

	_, ok, err := s.Get(ctx, Clients)
	require.NoError(t, err)
	assert.False(t, ok, "unknown collection must be absent")

	require.NoError(t, s.Set(ctx, Clients, []byte(`[{"id":1}]`)))
	got, ok, err := s.Get(ctx, Clients)
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"id":1}]`, string(got))

	require.NoError(t, s.Set(ctx, Clients, []byte(`[{"id":1},{"id":2}]`)))
	got, _, err = s.Get(ctx, Clients)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1},{"id":2}]`, string(got), "last write wins")

	_, ok, err = s.Get(ctx, Assets)
	require.NoError(t, err)
	assert.False(t, ok, "collections are independent")
}

func TestGormStore(t *testing.T) {
	storeContract(t, setupGormStore(t))
}

func TestRedisStore(t *testing.T) {
	storeContract(t, setupRedisStore(t))
}

func TestMemoryStore(t *testing.T) {
	storeContract(t, NewMemoryStore())
}

func TestRedisStore_UsesPrefix(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	s := NewRedisStore(client, "device1:")
	require.NoError(t, s.Set(context.Background(), Assets, []byte(`[]`)))

	v, err := mr.Get("device1:assets")
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestMemoryStore_Fail(t *testing.T) {
	s := NewMemoryStore()
	boom := errors.New("disk full")
	s.Fail(boom, boom)

	_, _, err := s.Get(context.Background(), Clients)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.Set(context.Background(), Clients, nil), boom)
	assert.Equal(t, 0, s.Writes())
}
