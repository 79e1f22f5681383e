package remove_order

import (
	"context"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/get_order"
)

type Request struct {
	ID          string
	OrderNumber string
}

type Interactor struct {
	Orders contracts.OrderAPI
}

func NewInteractor(orders contracts.OrderAPI) *Interactor {
	return &Interactor{Orders: orders}
}

// Execute deletes one order at its current version. Version conflicts are
// returned as they are, without a retry.
func (it *Interactor) Execute(ctx context.Context, req Request) error {
	o, err := get_order.Lookup(ctx, it.Orders, req.ID, req.OrderNumber)
	if err != nil {
		return err
	}
	if o == nil {
		return domain.ErrOrderNotFound
	}
	if err := it.Orders.DeleteOrder(ctx, o.ID, o.Version); err != nil {
		return domain.Upstream("delete order "+o.ID, err)
	}
	return nil
}
