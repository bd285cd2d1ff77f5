package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kama_contact_sync/internal/config"
	"kama_contact_sync/pkg/errorx"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisCache(client), mr
}

func TestWatermarkStore(t *testing.T) {
	cache, mr := newTestCache(t)
	store := NewWatermarkStore(cache, "wm:")
	ctx := context.Background()

	_, ok, err := store.Load(ctx, "phone-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "phone-1", 1700000000123))
	got, err := mr.Get("wm:phone-1")
	require.NoError(t, err)
	assert.Equal(t, "1700000000123", got)

	ts, ok, err := store.Load(ctx, "phone-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(1700000000123), ts)
}

func TestWatermarkStoreCorruptValue(t *testing.T) {
	cache, mr := newTestCache(t)
	require.NoError(t, mr.Set("wm:phone-1", "yesterday"))

	_, _, err := NewWatermarkStore(cache, "wm:").Load(context.Background(), "phone-1")
	require.Error(t, err)
	assert.Equal(t, errorx.CodeCacheError, errorx.GetCode(err))
}

func TestRedisCacheGetMissing(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	v, err := cache.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, cache.Set(ctx, "k", "v", time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("k"))
}

func TestNewClient(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := NewClient(context.Background(), config.RedisConfig{Host: mr.Host(), Port: cast.ToInt(mr.Port())})
	require.NoError(t, err)
	defer client.Close()

	_, err = NewClient(context.Background(), config.RedisConfig{Host: "127.0.0.1", Port: 1})
	require.Error(t, err)
	assert.Equal(t, errorx.CodeCacheError, errorx.GetCode(err))
}
