package graphql

import (
	"strings"

	"github.com/graph-gophers/graphql-go"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/queries/list_products"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/place_order"
)

type addressInput struct {
	FirstName    string
	LastName     string
	StreetName   string
	StreetNumber string
	PostalCode   string
	City         string
	State        *string
	Country      string
	Phone        *string
}

type productsArgs struct {
	Limit       *int32
	Offset      *int32
	Search      *string
	CategoryKey *string
	SortBy      *string
	SortOrder   *string
}

type orderKeyArgs struct {
	ID          *graphql.ID
	OrderNumber *string
}

type placeOrderArgs struct {
	ShippingAddress addressInput
	CustomerEmail   string
	BillingAddress  *addressInput
	IdempotencyKey  *string
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intPtr(v *int32) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}

func mapAddress(a addressInput) domain.Address {
	return domain.Address{
		FirstName:    strings.TrimSpace(a.FirstName),
		LastName:     strings.TrimSpace(a.LastName),
		StreetName:   strings.TrimSpace(a.StreetName),
		StreetNumber: strings.TrimSpace(a.StreetNumber),
		PostalCode:   strings.TrimSpace(a.PostalCode),
		City:         strings.TrimSpace(a.City),
		State:        strings.TrimSpace(deref(a.State)),
		Country:      strings.ToUpper(strings.TrimSpace(a.Country)),
		Phone:        strings.TrimSpace(deref(a.Phone)),
	}
}

func mapPlaceOrderRequest(args placeOrderArgs) place_order.Request {
	req := place_order.Request{
		ShippingAddress: mapAddress(args.ShippingAddress),
		CustomerEmail:   strings.TrimSpace(args.CustomerEmail),
		IdempotencyKey:  strings.TrimSpace(deref(args.IdempotencyKey)),
	}
	if args.BillingAddress != nil {
		billing := mapAddress(*args.BillingAddress)
		req.BillingAddress = &billing
	}
	return req
}

// mapProductsQuery leaves omitted limit and offset nil so the handler
// applies its defaults.
func mapProductsQuery(args productsArgs) list_products.Query {
	q := list_products.Query{
		Limit:       intPtr(args.Limit),
		Offset:      intPtr(args.Offset),
		Search:      strings.TrimSpace(deref(args.Search)),
		CategoryKey: strings.TrimSpace(deref(args.CategoryKey)),
		SortBy:      list_products.SortField(deref(args.SortBy)),
		SortOrder:   list_products.SortOrder(deref(args.SortOrder)),
	}
	if q.SortOrder == "" {
		q.SortOrder = list_products.Asc
	}
	return q
}

func orderKeys(args orderKeyArgs) (id, orderNumber string) {
	if args.ID != nil {
		id = strings.TrimSpace(string(*args.ID))
	}
	return id, strings.TrimSpace(deref(args.OrderNumber))
}
