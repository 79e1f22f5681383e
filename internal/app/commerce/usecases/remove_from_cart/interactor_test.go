package remove_from_cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-graph/internal/app/commerce/catalog"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/fakeplatform"
	"github.com/murkotick/storefront-graph/internal/platform"
)

func seed(fp *fakeplatform.Platform, items ...platform.ShoppingListLineItem) {
	fp.Lists = append(fp.Lists, &platform.ShoppingList{ID: "l1", Version: 1, LineItems: items})
}

func TestExecute_RemovesLineItem(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddProduct("a", "A", 5999, "USD")
	fp.AddProduct("b", "B", 4999, "USD")
	seed(fp,
		platform.ShoppingListLineItem{ID: "1", ProductID: "a", Quantity: 2},
		platform.ShoppingListLineItem{ID: "2", ProductID: "b", Quantity: 1},
	)

	cart, err := NewInteractor(fp, catalog.NewClient(fp, nil), nil).Execute(context.Background(), Request{ProductID: "a"})
	require.NoError(t, err)
	assert.Equal(t, "l1", cart.ID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "b", cart.Items[0].Product.ID)
	assert.Equal(t, int64(4999), cart.TotalAmount.MinorUnits)
}

func TestExecute_LastItemLeavesEmptyCart(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddProduct("a", "A", 5999, "USD")
	seed(fp, platform.ShoppingListLineItem{ID: "1", ProductID: "a", Quantity: 1})

	cart, err := NewInteractor(fp, catalog.NewClient(fp, nil), nil).Execute(context.Background(), Request{ProductID: "a"})
	require.NoError(t, err)
	assert.Equal(t, domain.EmptyCart(), cart)
	assert.Len(t, fp.Lists, 1, "the shopping list itself is kept")
}

func TestExecute_NotInCart(t *testing.T) {
	fp := fakeplatform.New()
	seed(fp, platform.ShoppingListLineItem{ID: "1", ProductID: "a", Quantity: 1})

	_, err := NewInteractor(fp, catalog.NewClient(fp, nil), nil).Execute(context.Background(), Request{ProductID: "b"})
	assert.ErrorIs(t, err, domain.ErrProductNotInCart)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, fp.CallCount("UpdateShoppingList"))
}

func TestExecute_NoCart(t *testing.T) {
	fp := fakeplatform.New()

	_, err := NewInteractor(fp, catalog.NewClient(fp, nil), nil).Execute(context.Background(), Request{ProductID: "a"})
	assert.ErrorIs(t, err, domain.ErrCartNotFound)
}
