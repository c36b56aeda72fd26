package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/authkeeper/internal/model"
	"github.com/dtroode/authkeeper/internal/storage/storagetest"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestStore_Contract(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storagetest.Harness {
		mr, rdb := newTestRedis(t)
		return storagetest.Harness{
			Store:   NewStore(rdb, "test:refresh"),
			Advance: mr.FastForward,
		}
	})
}

func TestStore_KeyLayout(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newTestRedis(t)
	s := NewStore(rdb, "ak:refresh")
	u := uuid.New()

	require.NoError(t, s.Store(ctx, u, "raw-secret", time.Hour))

	keys := mr.Keys()
	require.Len(t, keys, 1)
	assert.True(t, strings.HasPrefix(keys[0], "ak:refresh:"+u.String()+":"))
	assert.NotContains(t, keys[0], "raw-secret")
	assert.Equal(t, time.Hour, mr.TTL(keys[0]))
}

func TestStore_NamespacesAreIndependent(t *testing.T) {
	ctx := context.Background()
	_, rdb := newTestRedis(t)
	refresh := NewStore(rdb, "ak:refresh")
	reset := NewStore(rdb, "ak:reset")
	u := uuid.New()

	require.NoError(t, reset.Store(ctx, u, "secret", time.Hour))

	ok, err := refresh.Validate(ctx, u, "secret")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, refresh.InvalidateAll(ctx, u))
	ok, err = reset.Validate(ctx, u, "secret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_InvalidateAllAcrossBatches(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newTestRedis(t)
	s := NewStore(rdb, "ak")
	u := uuid.New()

	for i := 0; i < scanBatch*2+5; i++ {
		require.NoError(t, s.Store(ctx, u, uuid.NewString(), time.Hour))
	}
	require.NoError(t, s.InvalidateAll(ctx, u))

	assert.Empty(t, mr.Keys())
}

func TestStore_UnavailableBackend(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = rdb.Close() })
	s := NewStore(rdb, "ak")
	u := uuid.New()
	mr.Close()

	require.ErrorIs(t, s.Store(ctx, u, "s", time.Hour), model.ErrStorageUnavailable)

	_, err = s.Validate(ctx, u, "s")
	require.ErrorIs(t, err, model.ErrStorageUnavailable)

	_, err = s.Consume(ctx, u, "s")
	require.ErrorIs(t, err, model.ErrStorageUnavailable)

	require.ErrorIs(t, s.InvalidateAll(ctx, u), model.ErrStorageUnavailable)
	require.ErrorIs(t, s.Ping(ctx), model.ErrStorageUnavailable)
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, `a\*b\?c\[d\]`, escapeGlob("a*b?c[d]"))
}
