package remove_all_orders

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/list_orders"
)

type Interactor struct {
	Orders contracts.OrderAPI
	limit  int
}

// NewInteractor deletes at most limit orders per call (see list_orders.ClampLimit).
func NewInteractor(orders contracts.OrderAPI, limit int) *Interactor {
	return &Interactor{Orders: orders, limit: list_orders.ClampLimit(limit)}
}

// Execute deletes the newest orders concurrently and returns how many were
// deleted. The first failed delete is returned.
func (it *Interactor) Execute(ctx context.Context) (int, error) {
	orders, err := it.Orders.QueryOrders(ctx, it.limit)
	if err != nil {
		return 0, domain.Upstream("list orders", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, o := range orders {
		g.Go(func() error {
			if err := it.Orders.DeleteOrder(gctx, o.ID, o.Version); err != nil {
				return domain.Upstream("delete order "+o.ID, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return len(orders), nil
}
