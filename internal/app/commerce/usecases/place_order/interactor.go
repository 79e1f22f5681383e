package place_order

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/shared"
	"github.com/murkotick/storefront-graph/internal/pkg/clock"
	"github.com/murkotick/storefront-graph/internal/pkg/session"
	"github.com/murkotick/storefront-graph/internal/platform"
)

const (
	cartCurrency = "USD"
	cartCountry  = "US"
)

type Request struct {
	ShippingAddress domain.Address
	// BillingAddress defaults to the shipping address.
	BillingAddress *domain.Address
	CustomerEmail  string
	IdempotencyKey string
}

// Interactor runs the place-order workflow:
//
//  1. load the caller's shopping list (must have items)
//  2. resolve each line item's master variant
//  3. create a platform cart, then an order from it
//  4. delete the shopping list
//
// Platform writes are not rolled back. Each step is journaled and failures
// after step 1 return a *domain.PlacementError with the created ids.
type Interactor struct {
	Lists       contracts.ShoppingListAPI
	Orders      contracts.OrderAPI
	Catalog     contracts.Catalog
	Journal     contracts.PlacementJournal
	Idempotency contracts.IdempotencyStore
	Clock       clock.Clock
	Logger      *slog.Logger
}

func NewInteractor(
	lists contracts.ShoppingListAPI,
	orders contracts.OrderAPI,
	cat contracts.Catalog,
	journal contracts.PlacementJournal,
	idem contracts.IdempotencyStore,
	clk clock.Clock,
	logger *slog.Logger,
) *Interactor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Interactor{
		Lists:       lists,
		Orders:      orders,
		Catalog:     cat,
		Journal:     journal,
		Idempotency: idem,
		Clock:       clk,
		Logger:      logger.With("component", "place_order"),
	}
}

func (it *Interactor) Execute(ctx context.Context, req Request) (*domain.Order, error) {
	req.CustomerEmail = strings.TrimSpace(req.CustomerEmail)
	if req.CustomerEmail == "" {
		return nil, domain.ErrCustomerEmailRequired
	}
	if strings.TrimSpace(req.ShippingAddress.Country) == "" {
		return nil, domain.ErrShippingAddressInvalid
	}

	if req.IdempotencyKey == "" || it.Idempotency == nil {
		o, _, err := it.place(ctx, req)
		return o, err
	}

	key := idempotencyScope(ctx, req.IdempotencyKey)
	orderID, reserved, err := it.Idempotency.Reserve(ctx, key)
	if err != nil {
		return nil, domain.Upstream("reserve idempotency key", err)
	}
	if !reserved {
		if orderID == "" {
			return nil, domain.ErrPlacementInProgress
		}
		return it.replay(ctx, orderID)
	}

	o, placedID, err := it.place(ctx, req)
	if placedID != "" {
		if cerr := it.Idempotency.Complete(ctx, key, placedID); cerr != nil {
			it.Logger.WarnContext(ctx, "idempotency key not completed", "order_id", placedID, "error", cerr)
		}
	} else if rerr := it.Idempotency.Release(ctx, key); rerr != nil {
		it.Logger.WarnContext(ctx, "idempotency key not released", "error", rerr)
	}
	return o, err
}

// idempotencyScope namespaces a client key by the caller's session so two
// callers reusing a key never see each other's orders. Anonymous callers
// share the legacy cart and therefore one namespace.
func idempotencyScope(ctx context.Context, key string) string {
	if id := session.ID(ctx); id != "" {
		return "session:" + id + "/" + key
	}
	return "anonymous/" + key
}

// replay returns the order a completed idempotency key points at.
func (it *Interactor) replay(ctx context.Context, orderID string) (*domain.Order, error) {
	o, err := it.Orders.GetOrder(ctx, orderID)
	if err != nil {
		if platform.IsNotFound(err) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, domain.Upstream("get order "+orderID, err)
	}
	return shared.OrderView(ctx, it.Catalog, o)
}

// place runs the workflow. The second result is the id of the created
// platform order, set as soon as one exists even when a later step failed.
func (it *Interactor) place(ctx context.Context, req Request) (*domain.Order, string, error) {
	list, err := it.Lists.FindShoppingList(ctx, shared.CartKey(ctx))
	if err != nil {
		return nil, "", domain.Upstream("load cart", err)
	}
	if list == nil || len(list.LineItems) == 0 {
		return nil, "", domain.ErrEmptyCart
	}

	placement := domain.StartPlacement(uuid.NewString(), req.IdempotencyKey, list.ID, list.Version, req.CustomerEmail, it.Clock.Now())
	it.record(ctx, placement)
	log := it.Logger.With("placement_id", placement.ID(), "shopping_list_id", list.ID)

	fail := func(cause error) error {
		perr := placement.Fail(cause, it.Clock.Now())
		it.record(ctx, placement)
		log.ErrorContext(ctx, "order placement failed",
			"failed_after", string(perr.Step), "cart_id", perr.CartID, "order_id", perr.OrderID, "error", cause)
		return perr
	}

	lineItems, err := it.resolveVariants(ctx, list.LineItems)
	if err != nil {
		return nil, "", fail(err)
	}

	shipping := shared.AddressToPlatform(req.ShippingAddress)
	billing := shipping
	if req.BillingAddress != nil {
		billing = shared.AddressToPlatform(*req.BillingAddress)
	}

	cart, err := it.Orders.CreateCart(ctx, platform.CartDraft{
		Currency:        cartCurrency,
		Country:         cartCountry,
		LineItems:       lineItems,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		CustomerEmail:   req.CustomerEmail,
	})
	if err != nil {
		return nil, "", fail(domain.Upstream("create cart", err))
	}
	placement.CartCreated(cart.ID, it.Clock.Now())
	it.record(ctx, placement)

	order, err := it.Orders.CreateOrderFromCart(ctx, platform.OrderFromCartDraft{
		Cart:        platform.Reference{TypeID: "cart", ID: cart.ID},
		Version:     cart.Version,
		OrderNumber: NewOrderNumber(it.Clock.Now()),
	})
	if err != nil {
		return nil, "", fail(domain.Upstream("create order", err))
	}
	placement.OrderCreated(order.ID, order.OrderNumber, it.Clock.Now())
	it.record(ctx, placement)

	if err := it.Lists.DeleteShoppingList(ctx, list.ID, list.Version); err != nil {
		return nil, order.ID, fail(domain.Upstream("delete shopping list", err))
	}
	placement.Complete(it.Clock.Now())
	it.record(ctx, placement)
	log.InfoContext(ctx, "order placed", "order_id", order.ID, "order_number", order.OrderNumber)

	if order.ShippingAddress == nil {
		order.ShippingAddress = shipping
	}
	if order.BillingAddress == nil {
		order.BillingAddress = billing
	}
	if order.CustomerEmail == "" {
		order.CustomerEmail = req.CustomerEmail
	}
	view, err := shared.OrderView(ctx, it.Catalog, order)
	if err != nil {
		return nil, order.ID, err
	}
	return view, order.ID, nil
}

func (it *Interactor) resolveVariants(ctx context.Context, items []platform.ShoppingListLineItem) ([]platform.LineItemDraft, error) {
	out := make([]platform.LineItemDraft, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, li := range items {
		g.Go(func() error {
			p, err := it.Catalog.FetchProduct(gctx, li.ProductID)
			if err != nil {
				return err
			}
			out[i] = platform.LineItemDraft{ProductID: li.ProductID, VariantID: p.MasterVariant.ID, Quantity: li.Quantity}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// record journals the placement. Journal failures never fail the placement.
func (it *Interactor) record(ctx context.Context, p *domain.Placement) {
	if it.Journal == nil {
		return
	}
	if err := it.Journal.Save(context.WithoutCancel(ctx), p); err != nil {
		it.Logger.WarnContext(ctx, "placement journal write failed",
			"placement_id", p.ID(), "step", string(p.Step()), "error", err)
	}
}
