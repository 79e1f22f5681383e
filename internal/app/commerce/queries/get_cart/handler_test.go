package get_cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-graph/internal/app/commerce/catalog"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/fakeplatform"
	"github.com/murkotick/storefront-graph/internal/pkg/session"
	"github.com/murkotick/storefront-graph/internal/platform"
)

func TestExecute_NoListIsEmptyCart(t *testing.T) {
	fp := fakeplatform.New()
	cart, err := NewHandler(fp, catalog.NewClient(fp, nil), nil).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.EmptyCart(), cart)
}

func TestExecute_JoinsAndDropsBrokenItems(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddProduct("a", "A", 5999, "USD")
	fp.AddProduct("b", "B", 4999, "USD")
	fp.Lists = append(fp.Lists, &platform.ShoppingList{ID: "l1", Version: 1, LineItems: []platform.ShoppingListLineItem{
		{ID: "1", ProductID: "a", Quantity: 2},
		{ID: "2", ProductID: "deleted", Quantity: 1},
		{ID: "3", ProductID: "b", Quantity: 1},
	}})

	cart, err := NewHandler(fp, catalog.NewClient(fp, nil), nil).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "l1", cart.ID)
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, int64(16997), cart.TotalAmount.MinorUnits)
	assert.Equal(t, "169.97", cart.TotalAmount.Amount.StringFixed(2))
}

func TestExecute_SessionSelectsOwnList(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddProduct("a", "A", 100, "USD")
	fp.Lists = append(fp.Lists,
		&platform.ShoppingList{ID: "other", Key: "cart-bob", Version: 1, LineItems: []platform.ShoppingListLineItem{{ID: "1", ProductID: "a", Quantity: 1}}},
		&platform.ShoppingList{ID: "mine", Key: "cart-alice", Version: 1, LineItems: []platform.ShoppingListLineItem{{ID: "2", ProductID: "a", Quantity: 4}}},
	)

	ctx := session.WithID(context.Background(), "alice")
	cart, err := NewHandler(fp, catalog.NewClient(fp, nil), nil).Execute(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mine", cart.ID)
	assert.Equal(t, int64(400), cart.TotalAmount.MinorUnits)
}

func TestExecute_UpstreamFailure(t *testing.T) {
	fp := fakeplatform.New()
	fp.Fail["FindShoppingList"] = errors.New("503")

	_, err := NewHandler(fp, catalog.NewClient(fp, nil), nil).Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
}
