package contracts

import (
	"context"

	"github.com/murkotick/storefront-graph/internal/platform"
)

// ProductAPI is the catalog side of the commerce platform.
type ProductAPI interface {
	GetProductProjection(ctx context.Context, id string) (*platform.ProductProjection, error)
	SearchProductProjections(ctx context.Context, p platform.SearchParams) (*platform.PagedQueryResponse[platform.ProductProjection], error)
	GetCategory(ctx context.Context, id string) (*platform.Category, error)
	// FindCategoryByKey returns nil, nil when no category has the key.
	FindCategoryByKey(ctx context.Context, key string) (*platform.Category, error)
}

// ShoppingListAPI manages the shopping list that backs the cart.
type ShoppingListAPI interface {
	// FindShoppingList returns nil, nil on miss. An empty key selects the first list.
	FindShoppingList(ctx context.Context, key string) (*platform.ShoppingList, error)
	CreateShoppingList(ctx context.Context, draft platform.ShoppingListDraft) (*platform.ShoppingList, error)
	UpdateShoppingList(ctx context.Context, id string, version int64, actions ...platform.ShoppingListUpdateAction) (*platform.ShoppingList, error)
	DeleteShoppingList(ctx context.Context, id string, version int64) error
}

// OrderAPI manages platform carts and orders.
type OrderAPI interface {
	QueryOrders(ctx context.Context, limit int) ([]platform.Order, error)
	GetOrder(ctx context.Context, id string) (*platform.Order, error)
	GetOrderByNumber(ctx context.Context, orderNumber string) (*platform.Order, error)
	CreateCart(ctx context.Context, draft platform.CartDraft) (*platform.Cart, error)
	CreateOrderFromCart(ctx context.Context, draft platform.OrderFromCartDraft) (*platform.Order, error)
	DeleteOrder(ctx context.Context, id string, version int64) error
}
