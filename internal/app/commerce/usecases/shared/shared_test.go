package shared

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-graph/internal/app/commerce/catalog"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/fakeplatform"
	"github.com/murkotick/storefront-graph/internal/pkg/session"
	"github.com/murkotick/storefront-graph/internal/platform"
)

func TestCartKey(t *testing.T) {
	assert.Equal(t, "", CartKey(context.Background()))
	assert.Equal(t, "cart-abc", CartKey(session.WithID(context.Background(), "abc")))
}

func TestCartView_EmptyList(t *testing.T) {
	cat := catalog.NewClient(fakeplatform.New(), nil)

	assert.Equal(t, domain.EmptyCart(), CartView(context.Background(), cat, nil, nil))
	assert.Equal(t, domain.EmptyCart(), CartView(context.Background(), cat, nil, &platform.ShoppingList{ID: "l1"}))
}

func TestOrderView_UsesOrderTotal(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddProduct("a", "A", 100, "USD")
	cat := catalog.NewClient(fp, nil)

	o, err := OrderView(context.Background(), cat, &platform.Order{
		ID:              "o1",
		OrderNumber:     "ORD-1",
		LineItems:       []platform.LineItem{{ID: "li", ProductID: "a", Quantity: 3}},
		TotalPrice:      platform.Money{CentAmount: 250, CurrencyCode: "USD"},
		ShippingAddress: &platform.Address{City: "Austin", Country: "US"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(250), o.TotalAmount.MinorUnits)
	assert.Equal(t, "Austin", o.ShippingAddress.City)
	assert.Equal(t, domain.Address{}, o.BillingAddress)
	require.Len(t, o.Items, 1)
	assert.Equal(t, int64(100), o.Items[0].Price.MinorUnits)
}

func TestMarshalDomainEventPayload(t *testing.T) {
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	s, err := MarshalDomainEventPayload(&domain.PlacementFailedEvent{
		PlacementID: "pl", FailedAfter: domain.StepCartCreated, CartID: "c1", Reason: "boom", FailedAt: at,
	})
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &got))
	assert.Equal(t, "cart_created", got["failed_after"])
	assert.Equal(t, "c1", got["cart_id"])
	assert.Equal(t, "2026-03-01T00:00:00Z", got["occurred_at"])

	empty, err := MarshalDomainEventPayload(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", empty)
}
