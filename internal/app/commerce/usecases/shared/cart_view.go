package shared

import (
	"context"
	"log/slog"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/lineitems"
	"github.com/murkotick/storefront-graph/internal/pkg/session"
	"github.com/murkotick/storefront-graph/internal/platform"
)

const (
	cartKeyPrefix = "cart-"
	cartName      = "My Cart"
)

// CartKey is the shopping-list key for the caller's cart. Anonymous callers
// get "" which selects the project's first shopping list.
func CartKey(ctx context.Context) string {
	if id := session.ID(ctx); id != "" {
		return cartKeyPrefix + id
	}
	return ""
}

// NewCartDraft is the draft for a lazily created cart.
func NewCartDraft(ctx context.Context) platform.ShoppingListDraft {
	return platform.ShoppingListDraft{
		Key:       CartKey(ctx),
		Name:      platform.LocalizedString{platform.DefaultLocale: cartName},
		LineItems: []platform.ShoppingListLineItem{},
	}
}

// CartView builds the cart for a shopping list. A nil list is the empty cart.
func CartView(ctx context.Context, cat contracts.Catalog, logger *slog.Logger, list *platform.ShoppingList) *domain.Cart {
	if list == nil || len(list.LineItems) == 0 {
		return domain.EmptyCart()
	}
	items := lineitems.JoinTolerant(ctx, cat, logger, list.LineItems)
	return domain.BuildCart(list.ID, items)
}
