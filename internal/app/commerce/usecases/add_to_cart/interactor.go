package add_to_cart

import (
	"context"
	"log/slog"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/shared"
	"github.com/murkotick/storefront-graph/internal/platform"
)

// MaxQuantity bounds the quantity of one line item.
const MaxQuantity = 10_000

type Request struct {
	ProductID string
	Quantity  int
}

// Interactor adds a product to the caller's cart.
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

// Execute increments the product's line item, or adds one for the master
// variant, and returns the cart rebuilt from the platform's answer.
func (it *Interactor) Execute(ctx context.Context, req Request) (*domain.Cart, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	if req.Quantity > MaxQuantity {
		return nil, domain.ErrQuantityTooLarge
	}

	product, err := it.Catalog.FetchProduct(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	list, err := it.Lists.FindShoppingList(ctx, shared.CartKey(ctx))
	if err != nil {
		return nil, domain.Upstream("load cart", err)
	}
	if list == nil {
		list, err = it.Lists.CreateShoppingList(ctx, shared.NewCartDraft(ctx))
		if err != nil {
			return nil, domain.Upstream("create cart", err)
		}
	}

	action := platform.ShoppingListUpdateAction{
		Action:    platform.ActionAddLineItem,
		ProductID: product.ID,
		VariantID: product.MasterVariant.ID,
		Quantity:  req.Quantity,
	}
	if existing := list.FindLineItem(product.ID); existing != nil {
		if existing.Quantity+req.Quantity > MaxQuantity {
			return nil, domain.ErrQuantityTooLarge
		}
		action = platform.ShoppingListUpdateAction{
			Action:     platform.ActionChangeLineItemQuantity,
			LineItemID: existing.ID,
			Quantity:   existing.Quantity + req.Quantity,
		}
	}

	updated, err := it.Lists.UpdateShoppingList(ctx, list.ID, list.Version, action)
	if err != nil {
		return nil, domain.Upstream("update cart", err)
	}
	return shared.CartView(ctx, it.Catalog, it.Logger, updated), nil
}
