package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-graph/internal/pkg/clock"
)

func TestMemoryStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	s := NewMemoryStore(time.Hour, clk)

	id, ok, err := s.Reserve(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, id)

	id, ok, err = s.Reserve(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok, "in-flight key must not be reserved twice")
	assert.Empty(t, id)

	require.NoError(t, s.Complete(ctx, "k", "order-1"))
	require.NoError(t, s.Release(ctx, "k"))

	id, ok, err = s.Reserve(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "order-1", id)

	clk.Advance(2 * time.Hour)
	_, ok, err = s.Reserve(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok, "expired key is reusable")
}

func TestMemoryStore_ReleaseFreesPendingKey(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0, nil)

	_, ok, _ := s.Reserve(ctx, "k")
	require.True(t, ok)
	require.NoError(t, s.Release(ctx, "k"))

	_, ok, _ = s.Reserve(ctx, "k")
	assert.True(t, ok)
}
