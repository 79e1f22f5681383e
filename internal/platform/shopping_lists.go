package platform

import (
	"context"
	"net/http"
	"net/url"
)

// FindShoppingList returns the shopping list with the given key, or the
// first shopping list without a key when key is empty. Keyed lists belong
// to sessions and are never returned for an empty key. Nil, nil on miss.
func (c *Client) FindShoppingList(ctx context.Context, key string) (*ShoppingList, error) {
	q := url.Values{}
	q.Set("limit", "1")
	if key != "" {
		q.Set("where", keyPredicate(key))
	} else {
		q.Set("where", "key is not defined")
	}

	var out PagedQueryResponse[ShoppingList]
	if err := c.do(ctx, ScopeShoppingList, http.MethodGet, "shopping-lists", "/shopping-lists", q, nil, &out); err != nil {
		return nil, err
	}
	if len(out.Results) == 0 {
		return nil, nil
	}
	return &out.Results[0], nil
}

func (c *Client) CreateShoppingList(ctx context.Context, draft ShoppingListDraft) (*ShoppingList, error) {
	var out ShoppingList
	if err := c.do(ctx, ScopeShoppingList, http.MethodPost, "shopping-lists", "/shopping-lists", nil, draft, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type updateRequest[A any] struct {
	Version int64 `json:"version"`
	Actions []A   `json:"actions"`
}

// UpdateShoppingList applies actions against the given version.
func (c *Client) UpdateShoppingList(ctx context.Context, id string, version int64, actions ...ShoppingListUpdateAction) (*ShoppingList, error) {
	body := updateRequest[ShoppingListUpdateAction]{Version: version, Actions: actions}
	var out ShoppingList
	if err := c.do(ctx, ScopeShoppingList, http.MethodPost, "shopping-lists",
		"/shopping-lists/"+url.PathEscape(id), nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteShoppingList(ctx context.Context, id string, version int64) error {
	return c.do(ctx, ScopeShoppingList, http.MethodDelete, "shopping-lists",
		"/shopping-lists/"+url.PathEscape(id), versionQuery(version), nil, nil)
}
