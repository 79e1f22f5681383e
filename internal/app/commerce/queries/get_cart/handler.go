package get_cart

import (
	"context"
	"log/slog"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/shared"
)

type Handler struct {
	lists   contracts.ShoppingListAPI
	catalog contracts.Catalog
	logger  *slog.Logger
}

func NewHandler(lists contracts.ShoppingListAPI, cat contracts.Catalog, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{lists: lists, catalog: cat, logger: logger.With("component", "cart")}
}

// Execute returns the caller's cart; no shopping list means the empty cart.
func (h *Handler) Execute(ctx context.Context) (*domain.Cart, error) {
	list, err := h.lists.FindShoppingList(ctx, shared.CartKey(ctx))
	if err != nil {
		return nil, domain.Upstream("load cart", err)
	}
	return shared.CartView(ctx, h.catalog, h.logger, list), nil
}
