package platform

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// GetProductProjection fetches the current projection of one product.
func (c *Client) GetProductProjection(ctx context.Context, id string) (*ProductProjection, error) {
	var out ProductProjection
	err := c.do(ctx, ScopeDefault, http.MethodGet, "product-projections",
		"/product-projections/"+url.PathEscape(id), nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchProductProjections runs a product-projection search.
func (c *Client) SearchProductProjections(ctx context.Context, p SearchParams) (*PagedQueryResponse[ProductProjection], error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(p.Limit))
	q.Set("offset", strconv.Itoa(p.Offset))
	if p.Text != "" {
		q.Set("text."+DefaultLocale, p.Text)
	}
	for _, f := range p.Filters {
		q.Add("filter", f)
	}
	if p.Sort != "" {
		q.Set("sort", p.Sort)
	}

	var out PagedQueryResponse[ProductProjection]
	if err := c.do(ctx, ScopeDefault, http.MethodGet, "product-projections",
		"/product-projections/search", q, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetCategory(ctx context.Context, id string) (*Category, error) {
	var out Category
	err := c.do(ctx, ScopeDefault, http.MethodGet, "categories",
		"/categories/"+url.PathEscape(id), nil, nil, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

var predicateEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// keyPredicate builds a where predicate matching key exactly. Quotes and
// backslashes are escaped so the key stays a single string literal.
func keyPredicate(key string) string {
	return `key="` + predicateEscaper.Replace(key) + `"`
}

// FindCategoryByKey returns nil, nil when no category has the key.
func (c *Client) FindCategoryByKey(ctx context.Context, key string) (*Category, error) {
	q := url.Values{}
	q.Set("where", keyPredicate(key))
	q.Set("limit", "1")

	var out PagedQueryResponse[Category]
	if err := c.do(ctx, ScopeDefault, http.MethodGet, "categories", "/categories", q, nil, &out); err != nil {
		return nil, err
	}
	if len(out.Results) == 0 {
		return nil, nil
	}
	return &out.Results[0], nil
}
