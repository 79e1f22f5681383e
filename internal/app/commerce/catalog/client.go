// Package catalog reads products from the commerce platform and
// denormalizes their category references.
package catalog

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/platform"
)

const defaultMaxConcurrent = 8

type Client struct {
	api    contracts.ProductAPI
	logger *slog.Logger

	categories    singleflight.Group
	maxConcurrent int
}

func NewClient(api contracts.ProductAPI, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		api:           api,
		logger:        logger.With("component", "catalog"),
		maxConcurrent: defaultMaxConcurrent,
	}
}

// FetchProduct loads one product with category names resolved.
func (c *Client) FetchProduct(ctx context.Context, id string) (*domain.Product, error) {
	proj, err := c.api.GetProductProjection(ctx, id)
	if err != nil {
		if platform.IsNotFound(err) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Upstream("fetch product "+id, err)
	}
	return c.Assemble(ctx, proj), nil
}

// Assemble converts a projection and resolves each category reference
// concurrently. A category that cannot be loaded keeps an empty name.
func (c *Client) Assemble(ctx context.Context, proj *platform.ProductProjection) *domain.Product {
	p := product(proj)
	if len(p.Categories) == 0 {
		return p
	}

	var g errgroup.Group
	g.SetLimit(c.maxConcurrent)
	for i := range p.Categories {
		g.Go(func() error {
			p.Categories[i].Name = c.categoryName(ctx, p.ID, p.Categories[i].ID)
			return nil
		})
	}
	_ = g.Wait()
	return p
}

// AssembleAll converts a page of projections, preserving order.
func (c *Client) AssembleAll(ctx context.Context, projs []platform.ProductProjection) []*domain.Product {
	out := make([]*domain.Product, len(projs))
	var g errgroup.Group
	g.SetLimit(c.maxConcurrent)
	for i := range projs {
		g.Go(func() error {
			out[i] = c.Assemble(ctx, &projs[i])
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (c *Client) categoryName(ctx context.Context, productID, categoryID string) domain.LocalizedText {
	// The fetch is shared with concurrent callers; one caller's
	// cancellation must not fail the others.
	v, err, _ := c.categories.Do(categoryID, func() (interface{}, error) {
		return c.api.GetCategory(context.WithoutCancel(ctx), categoryID)
	})
	if err != nil {
		c.logger.WarnContext(ctx, "category lookup failed",
			"product_id", productID, "category_id", categoryID, "error", err)
		return domain.LocalizedText{}
	}
	cat, _ := v.(*platform.Category)
	if cat == nil {
		return domain.LocalizedText{}
	}
	return localized(cat.Name)
}

// ResolveCategoryKey returns the platform id for a category key. A miss is
// reported through found=false, not an error.
func (c *Client) ResolveCategoryKey(ctx context.Context, key string) (id string, found bool, err error) {
	cat, err := c.api.FindCategoryByKey(ctx, key)
	if err != nil {
		if platform.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, domain.Upstream("resolve category key "+key, err)
	}
	if cat == nil {
		return "", false, nil
	}
	return cat.ID, true, nil
}

// Search runs a product search against the platform.
func (c *Client) Search(ctx context.Context, params platform.SearchParams) (*platform.PagedQueryResponse[platform.ProductProjection], error) {
	page, err := c.api.SearchProductProjections(ctx, params)
	if err != nil {
		return nil, domain.Upstream("search products", err)
	}
	return page, nil
}
