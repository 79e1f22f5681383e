package get_order

import (
	"context"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/shared"
	"github.com/murkotick/storefront-graph/internal/platform"
)

type Handler struct {
	orders  contracts.OrderAPI
	catalog contracts.Catalog
}

func NewHandler(orders contracts.OrderAPI, cat contracts.Catalog) *Handler {
	return &Handler{orders: orders, catalog: cat}
}

// Execute looks an order up by id, or by order number when id is empty.
// A missing order yields nil, nil.
func (h *Handler) Execute(ctx context.Context, id, orderNumber string) (*domain.Order, error) {
	o, err := Lookup(ctx, h.orders, id, orderNumber)
	if err != nil || o == nil {
		return nil, err
	}
	return shared.OrderView(ctx, h.catalog, o)
}

// Lookup fetches the raw platform order. It fails with
// domain.ErrOrderLookupKeyRequired when both keys are empty and returns
// nil, nil when the platform does not know the order.
func Lookup(ctx context.Context, orders contracts.OrderAPI, id, orderNumber string) (*platform.Order, error) {
	var (
		o   *platform.Order
		err error
	)
	switch {
	case id != "":
		o, err = orders.GetOrder(ctx, id)
	case orderNumber != "":
		o, err = orders.GetOrderByNumber(ctx, orderNumber)
	default:
		return nil, domain.ErrOrderLookupKeyRequired
	}
	if err != nil {
		if platform.IsNotFound(err) {
			return nil, nil
		}
		return nil, domain.Upstream("get order", err)
	}
	return o, nil
}
