package domain

// LocalizedText carries the single locale the storefront serves.
type LocalizedText struct {
	EnUS string
}

// CategoryRef is a category reference with its name denormalized at read time.
// Name is empty when the category could not be resolved.
type CategoryRef struct {
	ID   string
	Name LocalizedText
}

type Price struct {
	ID    string
	Value Money
}

type Image struct {
	URL    string
	Label  string
	Width  int
	Height int
}

// AttributeValue is either a TextAttribute or a ReferenceAttribute.
type AttributeValue interface {
	isAttributeValue()
}

type TextAttribute struct {
	Text string
}

type ReferenceAttribute struct {
	TypeID string
	ID     string
}

func (TextAttribute) isAttributeValue()      {}
func (ReferenceAttribute) isAttributeValue() {}

type Attribute struct {
	Name  string
	Value AttributeValue
}

type Variant struct {
	ID         int
	SKU        string
	Prices     []Price
	Images     []Image
	Attributes []Attribute
}

// FirstPrice returns the first listed price, if any.
func (v Variant) FirstPrice() (Money, bool) {
	if len(v.Prices) == 0 {
		return Money{}, false
	}
	return v.Prices[0].Value, true
}

// Product is a read-only view of a platform product projection.
type Product struct {
	ID              string
	Key             string
	Version         int64
	Name            LocalizedText
	Slug            LocalizedText
	Description     LocalizedText
	MetaTitle       LocalizedText
	MetaDescription LocalizedText
	Categories      []CategoryRef
	MasterVariant   Variant
	Variants        []Variant
}

// DisplayPrice is the master variant's first price, or USD zero.
func (p *Product) DisplayPrice() Money {
	if m, ok := p.MasterVariant.FirstPrice(); ok {
		return m
	}
	return ZeroMoney(DefaultCurrency)
}
