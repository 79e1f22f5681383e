// Package fakeplatform is an in-memory commerce platform for tests.
package fakeplatform

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/murkotick/storefront-graph/internal/platform"
)

// Platform implements the product, shopping-list and order APIs in memory.
// Every mutating call checks and bumps the resource version.
type Platform struct {
	mu sync.Mutex

	Products   map[string]*platform.ProductProjection
	Categories map[string]*platform.Category
	Lists      []*platform.ShoppingList
	Carts      map[string]*platform.Cart
	cartDrafts map[string]platform.CartDraft
	Orders     map[string]*platform.Order

	// Fail makes the named method return the error.
	Fail map[string]error
	// Calls counts invocations per method name.
	Calls map[string]int
	// LastSearch is the last SearchProductProjections argument.
	LastSearch platform.SearchParams

	now func() time.Time
}

func New() *Platform {
	return &Platform{
		Products:   make(map[string]*platform.ProductProjection),
		Categories: make(map[string]*platform.Category),
		Carts:      make(map[string]*platform.Cart),
		cartDrafts: make(map[string]platform.CartDraft),
		Orders:     make(map[string]*platform.Order),
		Fail:       make(map[string]error),
		Calls:      make(map[string]int),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// NotFound builds the platform's 404 error.
func NotFound(what string) error {
	return &platform.Error{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("The Resource with ID '%s' was not found.", what)}
}

// Conflict builds the platform's version conflict error.
func Conflict(expected, actual int64) error {
	return &platform.Error{StatusCode: http.StatusConflict,
		Message: fmt.Sprintf("Object has a different version than expected. Expected: %d - Actual: %d.", expected, actual)}
}

func (f *Platform) enter(method string) error {
	f.Calls[method]++
	return f.Fail[method]
}

// CallCount is safe to call while requests are in flight.
func (f *Platform) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[method]
}

// AddProduct registers a product with a single master-variant price.
func (f *Platform) AddProduct(id, name string, centAmount int64, currency string, categoryIDs ...string) *platform.ProductProjection {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := &platform.ProductProjection{
		ID:      id,
		Version: 1,
		Name:    platform.LocalizedString{platform.DefaultLocale: name},
		Slug:    platform.LocalizedString{platform.DefaultLocale: strings.ToLower(name)},
		MasterVariant: platform.ProductVariant{
			ID:  1,
			SKU: "sku-" + id,
		},
	}
	if currency != "" {
		p.MasterVariant.Prices = []platform.Price{{Value: platform.Money{CentAmount: centAmount, CurrencyCode: currency, FractionDigits: 2}}}
	}
	for _, c := range categoryIDs {
		p.Categories = append(p.Categories, platform.Reference{TypeID: "category", ID: c})
	}
	f.Products[id] = p
	return p
}

func (f *Platform) AddCategory(id, key, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Categories[id] = &platform.Category{ID: id, Key: key, Version: 1, Name: platform.LocalizedString{platform.DefaultLocale: name}}
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

// Catalog

func (f *Platform) GetProductProjection(_ context.Context, id string) (*platform.ProductProjection, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("GetProductProjection"); err != nil {
		return nil, err
	}
	p, ok := f.Products[id]
	if !ok {
		return nil, NotFound(id)
	}
	return clone(p), nil
}

// SearchProductProjections supports the categories.id filter, a text match
// on name, sort by name and offset/limit.
func (f *Platform) SearchProductProjections(_ context.Context, params platform.SearchParams) (*platform.PagedQueryResponse[platform.ProductProjection], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.LastSearch = params
	if err := f.enter("SearchProductProjections"); err != nil {
		return nil, err
	}

	var all []platform.ProductProjection
	for _, p := range f.Products {
		if !matchesFilters(p, params.Filters) {
			continue
		}
		if params.Text != "" && !strings.Contains(strings.ToLower(p.Name.Get(platform.DefaultLocale)), strings.ToLower(params.Text)) &&
			!strings.Contains(strings.ToLower(p.Description.Get(platform.DefaultLocale)), strings.ToLower(params.Text)) {
			continue
		}
		all = append(all, *p)
	}

	desc := strings.HasSuffix(params.Sort, " desc")
	sort.SliceStable(all, func(i, j int) bool {
		if strings.HasPrefix(params.Sort, "name.") {
			a, b := all[i].Name.Get(platform.DefaultLocale), all[j].Name.Get(platform.DefaultLocale)
			if desc {
				return a > b
			}
			return a < b
		}
		return all[i].ID < all[j].ID
	})

	total := len(all)
	start := min(params.Offset, total)
	end := total
	if params.Limit > 0 {
		end = min(start+params.Limit, total)
	}
	page := all[start:end]
	return &platform.PagedQueryResponse[platform.ProductProjection]{
		Limit:   params.Limit,
		Offset:  params.Offset,
		Count:   len(page),
		Total:   total,
		Results: page,
	}, nil
}

func matchesFilters(p *platform.ProductProjection, filters []string) bool {
	for _, flt := range filters {
		id, ok := strings.CutPrefix(flt, "categories.id:")
		if !ok {
			continue
		}
		id = strings.Trim(id, `"`)
		found := false
		for _, c := range p.Categories {
			if c.ID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (f *Platform) GetCategory(_ context.Context, id string) (*platform.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("GetCategory"); err != nil {
		return nil, err
	}
	c, ok := f.Categories[id]
	if !ok {
		return nil, NotFound(id)
	}
	return clone(c), nil
}

func (f *Platform) FindCategoryByKey(_ context.Context, key string) (*platform.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("FindCategoryByKey"); err != nil {
		return nil, err
	}
	for _, c := range f.Categories {
		if c.Key == key {
			return clone(c), nil
		}
	}
	return nil, nil
}
