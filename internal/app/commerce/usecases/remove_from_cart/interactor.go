package remove_from_cart

import (
	"context"
	"log/slog"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/shared"
	"github.com/murkotick/storefront-graph/internal/platform"
)

type Request struct {
	ProductID string
}

type Interactor struct {
	Lists   contracts.ShoppingListAPI
	Catalog contracts.Catalog
	Logger  *slog.Logger
}

func NewInteractor(lists contracts.ShoppingListAPI, cat contracts.Catalog, logger *slog.Logger) *Interactor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interactor{Lists: lists, Catalog: cat, Logger: logger.With("component", "cart")}
}

// Execute removes the product's line item. It fails with
// domain.ErrCartNotFound or domain.ErrProductNotInCart.
func (it *Interactor) Execute(ctx context.Context, req Request) (*domain.Cart, error) {
	list, err := it.Lists.FindShoppingList(ctx, shared.CartKey(ctx))
	if err != nil {
		return nil, domain.Upstream("load cart", err)
	}
	if list == nil {
		return nil, domain.ErrCartNotFound
	}
	li := list.FindLineItem(req.ProductID)
	if li == nil {
		return nil, domain.ErrProductNotInCart
	}

	updated, err := it.Lists.UpdateShoppingList(ctx, list.ID, list.Version, platform.ShoppingListUpdateAction{
		Action:     platform.ActionRemoveLineItem,
		LineItemID: li.ID,
	})
	if err != nil {
		return nil, domain.Upstream("update cart", err)
	}
	return shared.CartView(ctx, it.Catalog, it.Logger, updated), nil
}
