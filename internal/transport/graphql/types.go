package graphql

import (
	"math"
	"net/http"

	"github.com/graph-gophers/graphql-go"
	"google.golang.org/grpc/codes"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/dto"
)

func ptr[T any](v T) *T { return &v }

// int32Field fails instead of wrapping when v does not fit a GraphQL Int.
func int32Field(field string, v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, &Error{Message: field + " is outside the GraphQL Int range", Code: codes.OutOfRange, Status: http.StatusInternalServerError}
	}
	return int32(v), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Money

type moneyResolver struct{ m domain.Money }

func (r moneyResolver) CurrencyCode() string  { return r.m.CurrencyCode }
func (r moneyResolver) FractionDigits() int32 { return domain.FractionDigits }
func (r moneyResolver) Amount() *float64      { return ptr(r.m.Float()) }

func (r moneyResolver) CentAmount() (int32, error) {
	return int32Field("centAmount", r.m.MinorUnits)
}

// Product

type localizedStringResolver struct{ text domain.LocalizedText }

func (r localizedStringResolver) EnUS() *string { return ptr(r.text.EnUS) }

func localized(t domain.LocalizedText) *localizedStringResolver {
	return &localizedStringResolver{text: t}
}

type categoryReferenceResolver struct{ ref domain.CategoryRef }

func (r categoryReferenceResolver) ID() graphql.ID                 { return graphql.ID(r.ref.ID) }
func (r categoryReferenceResolver) Name() *localizedStringResolver { return localized(r.ref.Name) }

type productResolver struct{ p *domain.Product }

func (r productResolver) ID() graphql.ID                            { return graphql.ID(r.p.ID) }
func (r productResolver) Key() *string                              { return optional(r.p.Key) }
func (r productResolver) Name() *localizedStringResolver            { return localized(r.p.Name) }
func (r productResolver) Slug() *localizedStringResolver            { return localized(r.p.Slug) }
func (r productResolver) Description() *localizedStringResolver     { return localized(r.p.Description) }
func (r productResolver) MetaTitle() *localizedStringResolver       { return localized(r.p.MetaTitle) }
func (r productResolver) MetaDescription() *localizedStringResolver { return localized(r.p.MetaDescription) }
func (r productResolver) MasterVariant() *variantResolver           { return &variantResolver{v: r.p.MasterVariant} }

func (r productResolver) Version() (int32, error) {
	return int32Field("version", r.p.Version)
}

func (r productResolver) Categories() *[]*categoryReferenceResolver {
	out := make([]*categoryReferenceResolver, len(r.p.Categories))
	for i, c := range r.p.Categories {
		out[i] = &categoryReferenceResolver{ref: c}
	}
	return &out
}

func (r productResolver) Variants() *[]*variantResolver {
	out := make([]*variantResolver, len(r.p.Variants))
	for i, v := range r.p.Variants {
		out[i] = &variantResolver{v: v}
	}
	return &out
}

type variantResolver struct{ v domain.Variant }

func (r variantResolver) ID() int32    { return int32(r.v.ID) }
func (r variantResolver) Sku() *string { return optional(r.v.SKU) }

func (r variantResolver) Prices() *[]*priceResolver {
	out := make([]*priceResolver, len(r.v.Prices))
	for i, p := range r.v.Prices {
		out[i] = &priceResolver{p: p}
	}
	return &out
}

func (r variantResolver) Images() *[]*imageResolver {
	out := make([]*imageResolver, len(r.v.Images))
	for i, img := range r.v.Images {
		out[i] = &imageResolver{img: img}
	}
	return &out
}

func (r variantResolver) Attributes() *[]*attributeResolver {
	out := make([]*attributeResolver, len(r.v.Attributes))
	for i, a := range r.v.Attributes {
		out[i] = &attributeResolver{a: a}
	}
	return &out
}

type priceResolver struct{ p domain.Price }

func (r priceResolver) Value() *moneyResolver { return &moneyResolver{m: r.p.Value} }

type imageResolver struct{ img domain.Image }

func (r imageResolver) URL() string                     { return r.img.URL }
func (r imageResolver) Label() *string                  { return optional(r.img.Label) }
func (r imageResolver) Dimensions() *dimensionsResolver { return &dimensionsResolver{img: r.img} }

type dimensionsResolver struct{ img domain.Image }

func (r dimensionsResolver) W() int32 { return int32(r.img.Width) }
func (r dimensionsResolver) H() int32 { return int32(r.img.Height) }

type attributeResolver struct{ a domain.Attribute }

func (r attributeResolver) Name() string { return r.a.Name }

func (r attributeResolver) Value() *attributeValueResolver {
	if r.a.Value == nil {
		return nil
	}
	return &attributeValueResolver{v: r.a.Value}
}

// attributeValueResolver resolves the AttributeValue union.
type attributeValueResolver struct{ v domain.AttributeValue }

func (r attributeValueResolver) ToTextAttribute() (*textAttributeResolver, bool) {
	t, ok := r.v.(domain.TextAttribute)
	if !ok {
		return nil, false
	}
	return &textAttributeResolver{t: t}, true
}

func (r attributeValueResolver) ToReferenceAttribute() (*referenceAttributeResolver, bool) {
	ref, ok := r.v.(domain.ReferenceAttribute)
	if !ok {
		return nil, false
	}
	return &referenceAttributeResolver{ref: ref}, true
}

type textAttributeResolver struct{ t domain.TextAttribute }

func (r textAttributeResolver) Text() string { return r.t.Text }

type referenceAttributeResolver struct{ ref domain.ReferenceAttribute }

func (r referenceAttributeResolver) TypeID() string { return r.ref.TypeID }
func (r referenceAttributeResolver) ID() graphql.ID { return graphql.ID(r.ref.ID) }

type productConnectionResolver struct{ page *dto.ProductPage }

func (r productConnectionResolver) Total() int32  { return int32(r.page.Total) }
func (r productConnectionResolver) Offset() int32 { return int32(r.page.Offset) }
func (r productConnectionResolver) Limit() int32  { return int32(r.page.Limit) }

func (r productConnectionResolver) Results() []*productResolver {
	out := make([]*productResolver, len(r.page.Results))
	for i, p := range r.page.Results {
		out[i] = &productResolver{p: p}
	}
	return out
}

// Cart and orders

type cartItemResolver struct{ item domain.CartItem }

func (r cartItemResolver) Product() *productResolver { return &productResolver{p: r.item.Product} }
func (r cartItemResolver) Quantity() int32           { return int32(r.item.Quantity) }
func (r cartItemResolver) Price() *moneyResolver     { return &moneyResolver{m: r.item.Price} }

func cartItems(items []domain.CartItem) []*cartItemResolver {
	out := make([]*cartItemResolver, len(items))
	for i, it := range items {
		out[i] = &cartItemResolver{item: it}
	}
	return out
}

type cartResolver struct{ c *domain.Cart }

func (r cartResolver) ID() graphql.ID              { return graphql.ID(r.c.ID) }
func (r cartResolver) Items() []*cartItemResolver  { return cartItems(r.c.Items) }
func (r cartResolver) TotalAmount() *moneyResolver { return &moneyResolver{m: r.c.TotalAmount} }

type addressResolver struct{ a domain.Address }

func (r addressResolver) FirstName() *string    { return optional(r.a.FirstName) }
func (r addressResolver) LastName() *string     { return optional(r.a.LastName) }
func (r addressResolver) StreetName() *string   { return optional(r.a.StreetName) }
func (r addressResolver) StreetNumber() *string { return optional(r.a.StreetNumber) }
func (r addressResolver) PostalCode() *string   { return optional(r.a.PostalCode) }
func (r addressResolver) City() *string         { return optional(r.a.City) }
func (r addressResolver) State() *string        { return optional(r.a.State) }
func (r addressResolver) Country() *string      { return optional(r.a.Country) }
func (r addressResolver) Phone() *string        { return optional(r.a.Phone) }

// createdAtLayout matches the platform's own timestamps.
const createdAtLayout = "2006-01-02T15:04:05.000Z"

type orderResolver struct{ o *domain.Order }

func (r orderResolver) ID() graphql.ID                    { return graphql.ID(r.o.ID) }
func (r orderResolver) OrderNumber() *string              { return optional(r.o.OrderNumber) }
func (r orderResolver) CreatedAt() string                 { return r.o.CreatedAt.UTC().Format(createdAtLayout) }
func (r orderResolver) Items() []*cartItemResolver        { return cartItems(r.o.Items) }
func (r orderResolver) TotalAmount() *moneyResolver       { return &moneyResolver{m: r.o.TotalAmount} }
func (r orderResolver) ShippingAddress() *addressResolver { return &addressResolver{a: r.o.ShippingAddress} }
func (r orderResolver) BillingAddress() *addressResolver  { return &addressResolver{a: r.o.BillingAddress} }
func (r orderResolver) CustomerEmail() string             { return r.o.CustomerEmail }
