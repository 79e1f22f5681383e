package add_to_cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-graph/internal/app/commerce/catalog"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/fakeplatform"
	"github.com/murkotick/storefront-graph/internal/pkg/session"
)

func newInteractor(fp *fakeplatform.Platform) *Interactor {
	return NewInteractor(fp, catalog.NewClient(fp, nil), nil)
}

func TestExecute_CreatesCartLazily(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddProduct("a", "A", 5999, "USD")

	cart, err := newInteractor(fp).Execute(context.Background(), Request{ProductID: "a", Quantity: 2})
	require.NoError(t, err)

	assert.Equal(t, 1, fp.CallCount("CreateShoppingList"))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, int64(11998), cart.TotalAmount.MinorUnits)
	assert.Equal(t, fp.Lists[0].ID, cart.ID)
}

func TestExecute_SameProductTwiceSumsQuantity(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddProduct("a", "A", 5999, "USD")
	fp.AddProduct("b", "B", 4999, "USD")
	it := newInteractor(fp)
	ctx := context.Background()

	_, err := it.Execute(ctx, Request{ProductID: "a", Quantity: 1})
	require.NoError(t, err)
	_, err = it.Execute(ctx, Request{ProductID: "b", Quantity: 1})
	require.NoError(t, err)
	cart, err := it.Execute(ctx, Request{ProductID: "a", Quantity: 1})
	require.NoError(t, err)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "a", cart.Items[0].Product.ID)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, int64(16997), cart.TotalAmount.MinorUnits)
	assert.Equal(t, 1, fp.CallCount("CreateShoppingList"))
	assert.Equal(t, int64(4), fp.Lists[0].Version)
}

func TestExecute_RejectsNonPositiveQuantity(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddProduct("a", "A", 100, "USD")

	for _, q := range []int{0, -1} {
		_, err := newInteractor(fp).Execute(context.Background(), Request{ProductID: "a", Quantity: q})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
	assert.Zero(t, fp.CallCount("FindShoppingList"))
}

func TestExecute_UnknownProduct(t *testing.T) {
	fp := fakeplatform.New()

	_, err := newInteractor(fp).Execute(context.Background(), Request{ProductID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Zero(t, fp.CallCount("CreateShoppingList"))
}

func TestExecute_SessionKeyedCart(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddProduct("a", "A", 100, "USD")
	it := newInteractor(fp)

	_, err := it.Execute(session.WithID(context.Background(), "alice"), Request{ProductID: "a", Quantity: 1})
	require.NoError(t, err)
	_, err = it.Execute(session.WithID(context.Background(), "bob"), Request{ProductID: "a", Quantity: 3})
	require.NoError(t, err)

	require.Len(t, fp.Lists, 2)
	assert.Equal(t, "cart-alice", fp.Lists[0].Key)
	assert.Equal(t, 1, fp.Lists[0].LineItems[0].Quantity)
	assert.Equal(t, "cart-bob", fp.Lists[1].Key)
	assert.Equal(t, 3, fp.Lists[1].LineItems[0].Quantity)
}

func TestExecute_QuantityIsBounded(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddProduct("a", "A", 5999, "USD")
	it := newInteractor(fp)
	ctx := context.Background()

	_, err := it.Execute(ctx, Request{ProductID: "a", Quantity: 400_000})
	assert.ErrorIs(t, err, domain.ErrQuantityTooLarge)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Zero(t, fp.CallCount("FindShoppingList"))

	_, err = it.Execute(ctx, Request{ProductID: "a", Quantity: MaxQuantity})
	require.NoError(t, err)
	_, err = it.Execute(ctx, Request{ProductID: "a", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrQuantityTooLarge)
	assert.Equal(t, MaxQuantity, fp.Lists[0].LineItems[0].Quantity)
}
