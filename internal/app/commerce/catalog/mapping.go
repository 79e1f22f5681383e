package catalog

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/platform"
)

// FormatMoney converts platform minor-unit money into display money.
func FormatMoney(m platform.Money) domain.Money {
	return domain.NewMoney(m.CentAmount, m.CurrencyCode)
}

func localized(l platform.LocalizedString) domain.LocalizedText {
	return domain.LocalizedText{EnUS: l.Get(platform.DefaultLocale)}
}

// Variant converts a platform variant, formatting its prices.
func Variant(v platform.ProductVariant) domain.Variant {
	out := domain.Variant{
		ID:         v.ID,
		SKU:        v.SKU,
		Prices:     make([]domain.Price, 0, len(v.Prices)),
		Images:     make([]domain.Image, 0, len(v.Images)),
		Attributes: make([]domain.Attribute, 0, len(v.Attributes)),
	}
	for _, p := range v.Prices {
		out.Prices = append(out.Prices, domain.Price{ID: p.ID, Value: FormatMoney(p.Value)})
	}
	for _, img := range v.Images {
		out.Images = append(out.Images, domain.Image{
			URL:    img.URL,
			Label:  img.Label,
			Width:  img.Dimensions.W,
			Height: img.Dimensions.H,
		})
	}
	for _, a := range v.Attributes {
		out.Attributes = append(out.Attributes, domain.Attribute{Name: a.Name, Value: attributeValue(a.Value)})
	}
	return out
}

// attributeValue maps a raw attribute value onto the text/reference union.
// Scalars become text, {"typeId","id"} objects become references and
// localized objects use the storefront locale. Anything else is dropped.
func attributeValue(raw json.RawMessage) domain.AttributeValue {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		return domain.TextAttribute{Text: s}
	case '{':
		var ref platform.Reference
		if err := json.Unmarshal(raw, &ref); err == nil && ref.TypeID != "" && ref.ID != "" {
			return domain.ReferenceAttribute{TypeID: ref.TypeID, ID: ref.ID}
		}
		var loc platform.LocalizedString
		if err := json.Unmarshal(raw, &loc); err == nil {
			if s, ok := loc[platform.DefaultLocale]; ok {
				return domain.TextAttribute{Text: s}
			}
		}
		var enum struct {
			Key   string `json:"key"`
			Label string `json:"label"`
		}
		if err := json.Unmarshal(raw, &enum); err == nil && enum.Key != "" {
			if enum.Label != "" {
				return domain.TextAttribute{Text: enum.Label}
			}
			return domain.TextAttribute{Text: enum.Key}
		}
		return nil
	case '[':
		return nil
	default:
		if b, err := strconv.ParseBool(string(raw)); err == nil {
			return domain.TextAttribute{Text: strconv.FormatBool(b)}
		}
		return domain.TextAttribute{Text: string(raw)}
	}
}

// product converts a projection without resolving category names.
func product(p *platform.ProductProjection) *domain.Product {
	out := &domain.Product{
		ID:              p.ID,
		Key:             p.Key,
		Version:         p.Version,
		Name:            localized(p.Name),
		Slug:            localized(p.Slug),
		Description:     localized(p.Description),
		MetaTitle:       localized(p.MetaTitle),
		MetaDescription: localized(p.MetaDescription),
		Categories:      make([]domain.CategoryRef, len(p.Categories)),
		MasterVariant:   Variant(p.MasterVariant),
		Variants:        make([]domain.Variant, 0, len(p.Variants)),
	}
	for i, ref := range p.Categories {
		out.Categories[i] = domain.CategoryRef{ID: ref.ID}
	}
	for _, v := range p.Variants {
		out.Variants = append(out.Variants, Variant(v))
	}
	return out
}
