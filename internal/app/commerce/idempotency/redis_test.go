package idempotency

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Lifecycle(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	client := NewRedisClient(addr, os.Getenv("REDIS_PASSWORD"), 0)
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisStore(client, time.Minute)
	require.NoError(t, s.Ping(ctx))
	key := "test-" + uuid.NewString()
	t.Cleanup(func() { client.Del(ctx, keyPrefix+key) })

	_, ok, err := s.Reserve(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	id, ok, err := s.Reserve(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, id)

	require.NoError(t, s.Complete(ctx, key, "order-1"))
	require.NoError(t, s.Release(ctx, key))

	id, ok, err = s.Reserve(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "order-1", id)
}
