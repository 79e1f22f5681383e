package list_products

import (
	"context"
	"strconv"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/dto"
	"github.com/murkotick/storefront-graph/internal/platform"
)

type Handler struct {
	catalog contracts.ProductSearch
}

func NewHandler(c contracts.ProductSearch) *Handler {
	return &Handler{catalog: c}
}

// Execute lists one page of products.
//
// Category filtering, the text search and name sorting run on the platform.
// The text search is reapplied locally over name and description, and price
// sorting happens locally, so both only ever act on the fetched page.
func (h *Handler) Execute(ctx context.Context, q Query) (*dto.ProductPage, error) {
	limit, offset, err := pagination(q)
	if err != nil {
		return nil, err
	}
	empty := &dto.ProductPage{Offset: offset, Limit: limit, Results: []*domain.Product{}}

	params := platform.SearchParams{Limit: limit, Offset: offset, Text: q.Search}
	if q.CategoryKey != "" {
		id, found, err := h.catalog.ResolveCategoryKey(ctx, q.CategoryKey)
		if err != nil {
			return nil, err
		}
		if !found {
			return empty, nil
		}
		params.Filters = append(params.Filters, `categories.id:`+strconv.Quote(id))
	}
	if q.SortBy == SortName {
		dir := "asc"
		if q.SortOrder == Desc {
			dir = "desc"
		}
		params.Sort = "name." + platform.DefaultLocale + " " + dir
	}

	page, err := h.catalog.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	products := h.catalog.AssembleAll(ctx, page.Results)
	total := page.Total
	if q.Search != "" {
		products = filterBySearch(products, q.Search)
		total = len(products)
	}
	if q.SortBy == SortPrice {
		sortByPrice(products, q.SortOrder)
	}

	return &dto.ProductPage{Total: total, Offset: offset, Limit: limit, Results: products}, nil
}

func pagination(q Query) (limit, offset int, err error) {
	limit, offset = DefaultLimit, 0
	if q.Limit != nil {
		if *q.Limit < 0 {
			return 0, 0, domain.ErrInvalidPagination
		}
		if *q.Limit > 0 {
			limit = min(*q.Limit, MaxLimit)
		}
	}
	if q.Offset != nil {
		if *q.Offset < 0 {
			return 0, 0, domain.ErrInvalidPagination
		}
		offset = *q.Offset
	}
	return limit, offset, nil
}
