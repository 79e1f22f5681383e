package list_products

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
)

// filterBySearch keeps products whose name or description contains term,
// compared case-insensitively.
func filterBySearch(products []*domain.Product, term string) []*domain.Product {
	fold := cases.Fold()
	needle := fold.String(term)
	out := products[:0:0]
	for _, p := range products {
		if strings.Contains(fold.String(p.Name.EnUS), needle) ||
			strings.Contains(fold.String(p.Description.EnUS), needle) {
			out = append(out, p)
		}
	}
	return out
}

// sortByPrice orders products by display price within the page. Products
// without a price sort as zero; ties keep the platform order.
func sortByPrice(products []*domain.Product, order SortOrder) {
	slices.SortStableFunc(products, func(a, b *domain.Product) int {
		pa, pb := a.DisplayPrice().MinorUnits, b.DisplayPrice().MinorUnits
		c := 0
		switch {
		case pa < pb:
			c = -1
		case pa > pb:
			c = 1
		}
		if order == Desc {
			return -c
		}
		return c
	})
}
