package platform

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (c *Client) CreateCart(ctx context.Context, draft CartDraft) (*Cart, error) {
	var out Cart
	if err := c.do(ctx, ScopeOrder, http.MethodPost, "carts", "/carts", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateOrderFromCart(ctx context.Context, draft OrderFromCartDraft) (*Order, error) {
	var out Order
	if err := c.do(ctx, ScopeOrder, http.MethodPost, "orders", "/orders", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// QueryOrders returns at most limit orders, newest first.
func (c *Client) QueryOrders(ctx context.Context, limit int) ([]Order, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("sort", "createdAt desc")

	var out PagedQueryResponse[Order]
	if err := c.do(ctx, ScopeOrder, http.MethodGet, "orders", "/orders", q, nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var out Order
	if err := c.do(ctx, ScopeOrder, http.MethodGet, "orders",
		"/orders/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetOrderByNumber(ctx context.Context, orderNumber string) (*Order, error) {
	var out Order
	if err := c.do(ctx, ScopeOrder, http.MethodGet, "orders",
		"/orders/order-number="+url.PathEscape(orderNumber), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOrder(ctx context.Context, id string, version int64) error {
	return c.do(ctx, ScopeOrder, http.MethodDelete, "orders",
		"/orders/"+url.PathEscape(id), versionQuery(version), nil, nil)
}
