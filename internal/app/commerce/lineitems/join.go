// Package lineitems joins platform line items with catalog products.
package lineitems

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/murkotick/storefront-graph/internal/app/commerce/catalog"
	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/platform"
)

// MaxConcurrent bounds product lookups per join.
const MaxConcurrent = 8

// JoinTolerant resolves each shopping-list line item's product concurrently.
// Items whose product cannot be loaded are logged and dropped; the rest keep
// their original order. The price is the product's master-variant price.
func JoinTolerant(ctx context.Context, cat contracts.Catalog, logger *slog.Logger, items []platform.ShoppingListLineItem) []domain.CartItem {
	if logger == nil {
		logger = slog.Default()
	}
	resolved := make([]*domain.CartItem, len(items))

	var g errgroup.Group
	g.SetLimit(MaxConcurrent)
	for i, li := range items {
		g.Go(func() error {
			p, err := cat.FetchProduct(ctx, li.ProductID)
			if err != nil {
				logger.WarnContext(ctx, "dropping cart line item",
					"line_item_id", li.ID, "product_id", li.ProductID, "error", err)
				return nil
			}
			resolved[i] = &domain.CartItem{Product: p, Quantity: li.Quantity, Price: p.DisplayPrice()}
			return nil
		})
	}
	_ = g.Wait()

	out := make([]domain.CartItem, 0, len(items))
	for _, it := range resolved {
		if it != nil {
			out = append(out, *it)
		}
	}
	return out
}

// JoinStrict resolves each order line item's product concurrently and fails
// on the first lookup error. The price is the line item's own price, then the
// product's master-variant price, then USD zero.
func JoinStrict(ctx context.Context, cat contracts.Catalog, items []platform.LineItem) ([]domain.CartItem, error) {
	out := make([]domain.CartItem, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxConcurrent)
	for i, li := range items {
		g.Go(func() error {
			p, err := cat.FetchProduct(gctx, li.ProductID)
			if err != nil {
				return fmt.Errorf("resolve line item %s: %w", li.ID, err)
			}
			price := p.DisplayPrice()
			if li.Price != nil {
				price = catalog.FormatMoney(li.Price.Value)
			}
			out[i] = domain.CartItem{Product: p, Quantity: li.Quantity, Price: price}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
