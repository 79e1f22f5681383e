package platform

import (
	"encoding/json"
	"time"
)

// DefaultLocale is the only locale the storefront reads and writes.
const DefaultLocale = "en-US"

// LocalizedString is the platform's locale -> text map.
type LocalizedString map[string]string

// Get returns the text for locale, or "" when absent.
func (l LocalizedString) Get(locale string) string {
	if l == nil {
		return ""
	}
	return l[locale]
}

// Money is the platform's minor-unit money representation.
type Money struct {
	Type           string `json:"type,omitempty"`
	CurrencyCode   string `json:"currencyCode"`
	CentAmount     int64  `json:"centAmount"`
	FractionDigits int    `json:"fractionDigits,omitempty"`
}

type Price struct {
	ID    string `json:"id,omitempty"`
	Value Money  `json:"value"`
}

type Dimensions struct {
	W int `json:"w"`
	H int `json:"h"`
}

type Image struct {
	URL        string     `json:"url"`
	Label      string     `json:"label,omitempty"`
	Dimensions Dimensions `json:"dimensions"`
}

// Attribute keeps its value raw: attribute values are strings, numbers,
// booleans or references depending on the product type.
type Attribute struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value,omitempty"`
}

type ProductVariant struct {
	ID         int         `json:"id"`
	SKU        string      `json:"sku,omitempty"`
	Key        string      `json:"key,omitempty"`
	Prices     []Price     `json:"prices,omitempty"`
	Images     []Image     `json:"images,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
}

// Reference points at another platform resource, e.g. {"typeId":"category","id":"..."}.
type Reference struct {
	TypeID string `json:"typeId"`
	ID     string `json:"id"`
}

type ProductProjection struct {
	ID              string           `json:"id"`
	Key             string           `json:"key,omitempty"`
	Version         int64            `json:"version"`
	Name            LocalizedString  `json:"name"`
	Slug            LocalizedString  `json:"slug"`
	Description     LocalizedString  `json:"description,omitempty"`
	MetaTitle       LocalizedString  `json:"metaTitle,omitempty"`
	MetaDescription LocalizedString  `json:"metaDescription,omitempty"`
	Categories      []Reference      `json:"categories,omitempty"`
	MasterVariant   ProductVariant   `json:"masterVariant"`
	Variants        []ProductVariant `json:"variants,omitempty"`
}

type Category struct {
	ID      string          `json:"id"`
	Key     string          `json:"key,omitempty"`
	Version int64           `json:"version"`
	Name    LocalizedString `json:"name"`
}

// PagedQueryResponse is the envelope of every list/search endpoint.
type PagedQueryResponse[T any] struct {
	Limit   int `json:"limit"`
	Offset  int `json:"offset"`
	Count   int `json:"count"`
	Total   int `json:"total"`
	Results []T `json:"results"`
}

// SearchParams drives the product-projection search endpoint.
type SearchParams struct {
	Limit   int
	Offset  int
	Text    string
	Filters []string
	Sort    string
}

type ShoppingListLineItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	VariantID int    `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
}

type ShoppingList struct {
	ID        string                 `json:"id"`
	Key       string                 `json:"key,omitempty"`
	Version   int64                  `json:"version"`
	Name      LocalizedString        `json:"name"`
	LineItems []ShoppingListLineItem `json:"lineItems"`
}

// FindLineItem returns the line item for productID, or nil.
func (l *ShoppingList) FindLineItem(productID string) *ShoppingListLineItem {
	if l == nil {
		return nil
	}
	for i := range l.LineItems {
		if l.LineItems[i].ProductID == productID {
			return &l.LineItems[i]
		}
	}
	return nil
}

type ShoppingListDraft struct {
	Key       string                 `json:"key,omitempty"`
	Name      LocalizedString        `json:"name"`
	LineItems []ShoppingListLineItem `json:"lineItems"`
}

// Shopping-list update action names.
const (
	ActionAddLineItem            = "addLineItem"
	ActionChangeLineItemQuantity = "changeLineItemQuantity"
	ActionRemoveLineItem         = "removeLineItem"
)

type ShoppingListUpdateAction struct {
	Action     string `json:"action"`
	LineItemID string `json:"lineItemId,omitempty"`
	ProductID  string `json:"productId,omitempty"`
	VariantID  int    `json:"variantId,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
}

type Address struct {
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	StreetName   string `json:"streetName,omitempty"`
	StreetNumber string `json:"streetNumber,omitempty"`
	PostalCode   string `json:"postalCode,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country"`
	Phone        string `json:"phone,omitempty"`
}

type LineItemDraft struct {
	ProductID string `json:"productId"`
	VariantID int    `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

type CartDraft struct {
	Currency        string          `json:"currency"`
	Country         string          `json:"country,omitempty"`
	LineItems       []LineItemDraft `json:"lineItems"`
	ShippingAddress *Address        `json:"shippingAddress,omitempty"`
	BillingAddress  *Address        `json:"billingAddress,omitempty"`
	CustomerEmail   string          `json:"customerEmail,omitempty"`
}

type Cart struct {
	ID         string `json:"id"`
	Version    int64  `json:"version"`
	TotalPrice Money  `json:"totalPrice"`
}

type OrderFromCartDraft struct {
	Cart        Reference `json:"cart"`
	Version     int64     `json:"version"`
	OrderNumber string    `json:"orderNumber,omitempty"`
}

type LineItem struct {
	ID        string         `json:"id"`
	ProductID string         `json:"productId"`
	Variant   ProductVariant `json:"variant"`
	Quantity  int            `json:"quantity"`
	Price     *Price         `json:"price,omitempty"`
}

type Order struct {
	ID              string     `json:"id"`
	Version         int64      `json:"version"`
	OrderNumber     string     `json:"orderNumber,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	CustomerEmail   string     `json:"customerEmail,omitempty"`
	LineItems       []LineItem `json:"lineItems"`
	TotalPrice      Money      `json:"totalPrice"`
	ShippingAddress *Address   `json:"shippingAddress,omitempty"`
	BillingAddress  *Address   `json:"billingAddress,omitempty"`
}
