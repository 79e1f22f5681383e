package list_orders

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-graph/internal/app/commerce/catalog"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/fakeplatform"
	"github.com/murkotick/storefront-graph/internal/platform"
)

func seed(fp *fakeplatform.Platform, n int, productID string) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < n; i++ {
		fp.AddOrder(platform.Order{
			ID:          fmt.Sprintf("o%d", i),
			OrderNumber: fmt.Sprintf("ORD-%d", i),
			CreatedAt:   base.Add(time.Duration(i) * time.Minute),
			LineItems:   []platform.LineItem{{ID: "li", ProductID: productID, Quantity: 1}},
		})
	}
}

func TestExecute_NewestFirstAndBounded(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddProduct("a", "A", 100, "USD")
	seed(fp, 5, "a")

	orders, err := NewHandler(fp, catalog.NewClient(fp, nil), 3).Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "o4", orders[0].ID)
	assert.Equal(t, "o2", orders[2].ID)
	assert.Equal(t, "A", orders[0].Items[0].Product.Name.EnUS)
}

func TestExecute_JoinFailureFailsList(t *testing.T) {
	fp := fakeplatform.New()
	seed(fp, 1, "gone")

	_, err := NewHandler(fp, catalog.NewClient(fp, nil), 0).Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, DefaultLimit, ClampLimit(0))
	assert.Equal(t, DefaultLimit, ClampLimit(-3))
	assert.Equal(t, 42, ClampLimit(42))
	assert.Equal(t, MaxLimit, ClampLimit(MaxLimit+1))
}
