package remove_all_orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/fakeplatform"
	"github.com/murkotick/storefront-graph/internal/platform"
)

func seed(fp *fakeplatform.Platform, n int) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		fp.AddOrder(platform.Order{ID: fmt.Sprintf("o%d", i), CreatedAt: base.Add(time.Duration(i) * time.Minute)})
	}
}

func TestExecute_DeletesAll(t *testing.T) {
	fp := fakeplatform.New()
	seed(fp, 5)

	n, err := NewInteractor(fp, 0).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Empty(t, fp.Orders)
}

func TestExecute_BoundedByLimit(t *testing.T) {
	fp := fakeplatform.New()
	seed(fp, 5)

	n, err := NewInteractor(fp, 2).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, fp.Orders, 3)
	assert.Contains(t, fp.Orders, "o0", "oldest orders stay")
}

func TestExecute_NoOrders(t *testing.T) {
	n, err := NewInteractor(fakeplatform.New(), 0).Execute(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestExecute_DeleteFailure(t *testing.T) {
	fp := fakeplatform.New()
	seed(fp, 2)
	fp.Fail["DeleteOrder"] = fakeplatform.Conflict(1, 2)

	_, err := NewInteractor(fp, 0).Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
}
