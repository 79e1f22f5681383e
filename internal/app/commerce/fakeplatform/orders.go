package fakeplatform

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/murkotick/storefront-graph/internal/platform"
)

func copyOrder(o *platform.Order) *platform.Order {
	c := *o
	c.LineItems = append([]platform.LineItem(nil), o.LineItems...)
	return &c
}

func (f *Platform) CreateCart(_ context.Context, draft platform.CartDraft) (*platform.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateCart"); err != nil {
		return nil, err
	}
	c := &platform.Cart{ID: uuid.NewString(), Version: 1}
	f.Carts[c.ID] = c
	f.cartDrafts[c.ID] = draft
	return clone(c), nil
}

// CartDraft returns the draft a cart was created from.
func (f *Platform) CartDraft(cartID string) (platform.CartDraft, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.cartDrafts[cartID]
	return d, ok
}

func (f *Platform) CreateOrderFromCart(_ context.Context, draft platform.OrderFromCartDraft) (*platform.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateOrderFromCart"); err != nil {
		return nil, err
	}
	cart, ok := f.Carts[draft.Cart.ID]
	if !ok {
		return nil, NotFound(draft.Cart.ID)
	}
	if cart.Version != draft.Version {
		return nil, Conflict(draft.Version, cart.Version)
	}
	cd := f.cartDrafts[cart.ID]

	o := &platform.Order{
		ID:              uuid.NewString(),
		Version:         1,
		OrderNumber:     draft.OrderNumber,
		CreatedAt:       f.now(),
		CustomerEmail:   cd.CustomerEmail,
		ShippingAddress: cd.ShippingAddress,
		BillingAddress:  cd.BillingAddress,
	}
	var total int64
	for _, li := range cd.LineItems {
		line := platform.LineItem{ID: uuid.NewString(), ProductID: li.ProductID, Quantity: li.Quantity}
		if p, ok := f.Products[li.ProductID]; ok {
			line.Variant = p.MasterVariant
			if len(p.MasterVariant.Prices) > 0 {
				price := p.MasterVariant.Prices[0]
				line.Price = &price
				total += price.Value.CentAmount * int64(li.Quantity)
			}
		} else {
			line.Variant = platform.ProductVariant{ID: li.VariantID}
		}
		o.LineItems = append(o.LineItems, line)
	}
	o.TotalPrice = platform.Money{CurrencyCode: cd.Currency, CentAmount: total, FractionDigits: 2}
	f.Orders[o.ID] = o
	return copyOrder(o), nil
}

func (f *Platform) QueryOrders(_ context.Context, limit int) ([]platform.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("QueryOrders"); err != nil {
		return nil, err
	}
	out := make([]platform.Order, 0, len(f.Orders))
	for _, o := range f.Orders {
		out = append(out, *copyOrder(o))
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].OrderNumber > out[j].OrderNumber
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *Platform) GetOrder(_ context.Context, id string) (*platform.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("GetOrder"); err != nil {
		return nil, err
	}
	o, ok := f.Orders[id]
	if !ok {
		return nil, NotFound(id)
	}
	return copyOrder(o), nil
}

func (f *Platform) GetOrderByNumber(_ context.Context, orderNumber string) (*platform.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("GetOrderByNumber"); err != nil {
		return nil, err
	}
	for _, o := range f.Orders {
		if o.OrderNumber == orderNumber {
			return copyOrder(o), nil
		}
	}
	return nil, NotFound(orderNumber)
}

func (f *Platform) DeleteOrder(_ context.Context, id string, version int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("DeleteOrder"); err != nil {
		return err
	}
	o, ok := f.Orders[id]
	if !ok {
		return NotFound(id)
	}
	if o.Version != version {
		return Conflict(version, o.Version)
	}
	delete(f.Orders, id)
	return nil
}

// AddOrder stores a pre-built order.
func (f *Platform) AddOrder(o platform.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if o.Version == 0 {
		o.Version = 1
	}
	f.Orders[o.ID] = &o
}
