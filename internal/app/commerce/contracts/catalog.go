package contracts

import (
	"context"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/platform"
)

// Catalog resolves products for the cart and order joins.
type Catalog interface {
	// FetchProduct fails with domain.ErrProductNotFound when the product does not exist.
	FetchProduct(ctx context.Context, id string) (*domain.Product, error)
}

// ProductSearch backs product listings.
type ProductSearch interface {
	// ResolveCategoryKey reports a missing key through found=false.
	ResolveCategoryKey(ctx context.Context, key string) (id string, found bool, err error)
	Search(ctx context.Context, params platform.SearchParams) (*platform.PagedQueryResponse[platform.ProductProjection], error)
	AssembleAll(ctx context.Context, projs []platform.ProductProjection) []*domain.Product
}
