package shared

import (
	"context"

	"github.com/murkotick/storefront-graph/internal/app/commerce/catalog"
	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/lineitems"
	"github.com/murkotick/storefront-graph/internal/platform"
)

// OrderView joins an order's line items with the catalog. Any failed product
// lookup fails the whole order.
func OrderView(ctx context.Context, cat contracts.Catalog, o *platform.Order) (*domain.Order, error) {
	items, err := lineitems.JoinStrict(ctx, cat, o.LineItems)
	if err != nil {
		return nil, err
	}
	return &domain.Order{
		ID:              o.ID,
		OrderNumber:     o.OrderNumber,
		CreatedAt:       o.CreatedAt,
		Items:           items,
		TotalAmount:     catalog.FormatMoney(o.TotalPrice),
		ShippingAddress: AddressFromPlatform(o.ShippingAddress),
		BillingAddress:  AddressFromPlatform(o.BillingAddress),
		CustomerEmail:   o.CustomerEmail,
	}, nil
}

func AddressFromPlatform(a *platform.Address) domain.Address {
	if a == nil {
		return domain.Address{}
	}
	return domain.Address{
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		StreetName:   a.StreetName,
		StreetNumber: a.StreetNumber,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
		Phone:        a.Phone,
	}
}

func AddressToPlatform(a domain.Address) *platform.Address {
	return &platform.Address{
		FirstName:    a.FirstName,
		LastName:     a.LastName,
		StreetName:   a.StreetName,
		StreetNumber: a.StreetNumber,
		City:         a.City,
		State:        a.State,
		PostalCode:   a.PostalCode,
		Country:      a.Country,
		Phone:        a.Phone,
	}
}
