package list_stale_placements

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/pkg/clock"
)

type stubReader struct {
	placements []*domain.Placement
	err        error
	cutoff     time.Time
	limit      int
}

func (s *stubReader) ListStale(_ context.Context, updatedBefore time.Time, limit int) ([]*domain.Placement, error) {
	s.cutoff, s.limit = updatedBefore, limit
	return s.placements, s.err
}

func TestExecute_ClassifiesResidue(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	old := now.Add(-time.Hour)

	failed := domain.StartPlacement("pl-1", "", "l1", 2, "a@b.c", old)
	failed.CartCreated("c1", old)
	failed.Fail(errors.New("create order: 500"), old)

	ghost := domain.StartPlacement("pl-2", "", "l2", 3, "a@b.c", old)
	ghost.CartCreated("c2", old)
	ghost.OrderCreated("o2", "ORD-2", old)

	reader := &stubReader{placements: []*domain.Placement{failed, ghost}}
	out, err := NewHandler(reader, clock.NewFake(now)).Execute(context.Background(), Query{})
	require.NoError(t, err)

	assert.Equal(t, now.Add(-DefaultGrace), reader.cutoff)
	assert.Equal(t, DefaultLimit, reader.limit)
	require.Len(t, out, 2)

	assert.Equal(t, "pl-1", out[0].PlacementID)
	assert.Equal(t, string(domain.ResidueOrphanedCart), out[0].Residue)
	assert.Equal(t, "cart_created", out[0].FailedAfter)
	assert.Equal(t, "c1", out[0].CartID)
	assert.Equal(t, "create order: 500", out[0].LastError)

	assert.Equal(t, string(domain.ResidueShoppingList), out[1].Residue)
	assert.Equal(t, "o2", out[1].OrderID)
}

func TestExecute_ReaderError(t *testing.T) {
	reader := &stubReader{err: errors.New("spanner down")}
	_, err := NewHandler(reader, clock.NewFake(time.Now())).Execute(context.Background(), Query{Grace: time.Minute, Limit: 5})
	assert.Error(t, err)
	assert.Equal(t, 5, reader.limit)
}
