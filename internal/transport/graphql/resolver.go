// Package graphql exposes the storefront over GraphQL.
package graphql

import (
	"context"
	_ "embed"
	"errors"
	"log/slog"

	"github.com/graph-gophers/graphql-go"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/get_cart"
	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/get_order"
	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/get_product"
	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/list_orders"
	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/list_products"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/add_to_cart"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/place_order"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/remove_all_orders"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/remove_from_cart"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/remove_order"
)

//go:embed schema.graphql
var schemaSDL string

// Commands groups write interactors.
type Commands struct {
	AddToCart       *add_to_cart.Interactor
	RemoveFromCart  *remove_from_cart.Interactor
	PlaceOrder      *place_order.Interactor
	RemoveOrder     *remove_order.Interactor
	RemoveAllOrders *remove_all_orders.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Product  *get_product.Handler
	Products *list_products.Handler
	Cart     *get_cart.Handler
	Orders   *list_orders.Handler
	Order    *get_order.Handler
}

// Resolver is the root resolver. It validates arguments, maps them to
// application requests and delegates to the CQRS handlers.
type Resolver struct {
	commands Commands
	queries  Queries
	logger   *slog.Logger
}

func NewResolver(cmd Commands, qry Queries, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{commands: cmd, queries: qry, logger: logger.With("component", "graphql")}
}

// NewSchema parses the embedded schema against r.
func NewSchema(r *Resolver) (*graphql.Schema, error) {
	return graphql.ParseSchema(schemaSDL, r, graphql.MaxParallelism(16))
}

// fail maps err and logs failures that are not the caller's fault.
func (r *Resolver) fail(ctx context.Context, op string, err error) error {
	mapped := mapError(err)
	var gerr *Error
	if errors.As(mapped, &gerr) {
		switch gerr.Code {
		case codes.Internal, codes.DeadlineExceeded:
			r.logger.ErrorContext(ctx, "request failed", "op", op, "status", gerr.Status, "error", err)
		case codes.Aborted:
			r.logger.WarnContext(ctx, "version conflict", "op", op, "error", err)
		}
	}
	return mapped
}

// Queries

func (r *Resolver) Health() string {
	return "OK"
}

func (r *Resolver) Cart(ctx context.Context) (*cartResolver, error) {
	c, err := r.queries.Cart.Execute(ctx)
	if err != nil {
		return nil, r.fail(ctx, "cart", err)
	}
	return &cartResolver{c: c}, nil
}

func (r *Resolver) Product(ctx context.Context, args struct{ ID graphql.ID }) (*productResolver, error) {
	if err := validateProductID(string(args.ID)); err != nil {
		return nil, invalidArgument(err.Error())
	}
	p, err := r.queries.Product.Execute(ctx, string(args.ID))
	if err != nil {
		return nil, r.fail(ctx, "product", err)
	}
	return &productResolver{p: p}, nil
}

func (r *Resolver) Products(ctx context.Context, args productsArgs) (*productConnectionResolver, error) {
	page, err := r.queries.Products.Execute(ctx, mapProductsQuery(args))
	if err != nil {
		return nil, r.fail(ctx, "products", err)
	}
	return &productConnectionResolver{page: page}, nil
}

func (r *Resolver) Orders(ctx context.Context) ([]*orderResolver, error) {
	orders, err := r.queries.Orders.Execute(ctx)
	if err != nil {
		return nil, r.fail(ctx, "orders", err)
	}
	out := make([]*orderResolver, len(orders))
	for i, o := range orders {
		out[i] = &orderResolver{o: o}
	}
	return out, nil
}

func (r *Resolver) Order(ctx context.Context, args orderKeyArgs) (*orderResolver, error) {
	id, number := orderKeys(args)
	o, err := r.queries.Order.Execute(ctx, id, number)
	if err != nil {
		return nil, r.fail(ctx, "order", err)
	}
	if o == nil {
		return nil, nil
	}
	return &orderResolver{o: o}, nil
}

// Mutations

func (r *Resolver) AddToCart(ctx context.Context, args struct {
	ProductID graphql.ID
	Quantity  int32
}) (*cartResolver, error) {
	if err := validateProductID(string(args.ProductID)); err != nil {
		return nil, invalidArgument(err.Error())
	}
	c, err := r.commands.AddToCart.Execute(ctx, add_to_cart.Request{
		ProductID: string(args.ProductID),
		Quantity:  int(args.Quantity),
	})
	if err != nil {
		return nil, r.fail(ctx, "addToCart", err)
	}
	return &cartResolver{c: c}, nil
}

func (r *Resolver) RemoveFromCart(ctx context.Context, args struct{ ProductID graphql.ID }) (*cartResolver, error) {
	if err := validateProductID(string(args.ProductID)); err != nil {
		return nil, invalidArgument(err.Error())
	}
	c, err := r.commands.RemoveFromCart.Execute(ctx, remove_from_cart.Request{ProductID: string(args.ProductID)})
	if err != nil {
		return nil, r.fail(ctx, "removeFromCart", err)
	}
	return &cartResolver{c: c}, nil
}

func (r *Resolver) PlaceOrder(ctx context.Context, args placeOrderArgs) (*orderResolver, error) {
	if err := validatePlaceOrder(args); err != nil {
		return nil, invalidArgument(err.Error())
	}
	o, err := r.commands.PlaceOrder.Execute(ctx, mapPlaceOrderRequest(args))
	if err != nil {
		return nil, r.fail(ctx, "placeOrder", err)
	}
	return &orderResolver{o: o}, nil
}

func (r *Resolver) RemoveOrder(ctx context.Context, args orderKeyArgs) (bool, error) {
	id, number := orderKeys(args)
	if err := r.commands.RemoveOrder.Execute(ctx, remove_order.Request{ID: id, OrderNumber: number}); err != nil {
		return false, r.fail(ctx, "removeOrder", err)
	}
	return true, nil
}

func (r *Resolver) RemoveAllOrders(ctx context.Context) (bool, error) {
	n, err := r.commands.RemoveAllOrders.Execute(ctx)
	if err != nil {
		return false, r.fail(ctx, "removeAllOrders", err)
	}
	r.logger.InfoContext(ctx, "orders removed", "count", n)
	return true, nil
}
