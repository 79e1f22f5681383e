package list_orders

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/shared"
)

const (
	DefaultLimit = 100
	MaxLimit     = 500
)

type Handler struct {
	orders  contracts.OrderAPI
	catalog contracts.Catalog
	limit   int
}

// NewHandler reads at most limit orders per call, clamped to [1, MaxLimit].
func NewHandler(orders contracts.OrderAPI, cat contracts.Catalog, limit int) *Handler {
	return &Handler{orders: orders, catalog: cat, limit: ClampLimit(limit)}
}

func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultLimit
	case limit > MaxLimit:
		return MaxLimit
	default:
		return limit
	}
}

// Execute returns the newest orders with their line items joined.
func (h *Handler) Execute(ctx context.Context) ([]*domain.Order, error) {
	raw, err := h.orders.QueryOrders(ctx, h.limit)
	if err != nil {
		return nil, domain.Upstream("list orders", err)
	}

	out := make([]*domain.Order, len(raw))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i := range raw {
		g.Go(func() error {
			o, err := shared.OrderView(gctx, h.catalog, &raw[i])
			if err != nil {
				return err
			}
			out[i] = o
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
