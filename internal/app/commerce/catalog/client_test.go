package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/fakeplatform"
	"github.com/murkotick/storefront-graph/internal/platform"
)

func TestFetchProduct_DenormalizesCategories(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddCategory("c1", "mugs", "Mugs")
	fp.AddProduct("p1", "Blue Mug", 1299, "USD", "c1", "c-missing")

	c := NewClient(fp, nil)
	p, err := c.FetchProduct(context.Background(), "p1")
	require.NoError(t, err)

	assert.Equal(t, "Blue Mug", p.Name.EnUS)
	require.Len(t, p.Categories, 2)
	assert.Equal(t, domain.CategoryRef{ID: "c1", Name: domain.LocalizedText{EnUS: "Mugs"}}, p.Categories[0])
	assert.Equal(t, domain.CategoryRef{ID: "c-missing"}, p.Categories[1])
	assert.Equal(t, int64(1299), p.DisplayPrice().MinorUnits)
}

func TestFetchProduct_CategoryOutageDegrades(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddCategory("c1", "mugs", "Mugs")
	fp.AddProduct("p1", "Blue Mug", 1299, "USD", "c1")
	fp.Fail["GetCategory"] = errors.New("connection reset")

	p, err := NewClient(fp, nil).FetchProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "", p.Categories[0].Name.EnUS)
}

// ctxAwarePlatform fails category reads on a done context, like the HTTP client.
type ctxAwarePlatform struct {
	*fakeplatform.Platform
}

func (p ctxAwarePlatform) GetCategory(ctx context.Context, id string) (*platform.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.Platform.GetCategory(ctx, id)
}

func TestCategoryName_SharedFetchIgnoresCallerCancellation(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddCategory("c1", "mugs", "Mugs")
	c := NewClient(ctxAwarePlatform{fp}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, domain.LocalizedText{EnUS: "Mugs"}, c.categoryName(ctx, "p1", "c1"))
}

func TestFetchProduct_NotFound(t *testing.T) {
	_, err := NewClient(fakeplatform.New(), nil).FetchProduct(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFetchProduct_UpstreamFailure(t *testing.T) {
	fp := fakeplatform.New()
	fp.Fail["GetProductProjection"] = &platform.Error{StatusCode: 503, Message: "unavailable"}

	_, err := NewClient(fp, nil).FetchProduct(context.Background(), "p1")
	assert.ErrorIs(t, err, domain.ErrUpstreamFailure)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func TestResolveCategoryKey(t *testing.T) {
	fp := fakeplatform.New()
	fp.AddCategory("c1", "mugs", "Mugs")
	c := NewClient(fp, nil)

	id, found, err := c.ResolveCategoryKey(context.Background(), "mugs")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "c1", id)

	_, found, err = c.ResolveCategoryKey(context.Background(), "plates")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestVariant_MapsAttributes(t *testing.T) {
	v := Variant(platform.ProductVariant{
		ID: 2,
		Attributes: []platform.Attribute{
			{Name: "color", Value: json.RawMessage(`"blue"`)},
			{Name: "size", Value: json.RawMessage(`42`)},
			{Name: "gift", Value: json.RawMessage(`true`)},
			{Name: "brand", Value: json.RawMessage(`{"typeId":"product","id":"b1"}`)},
			{Name: "material", Value: json.RawMessage(`{"en-US":"Ceramic"}`)},
			{Name: "finish", Value: json.RawMessage(`{"key":"matte","label":"Matte"}`)},
			{Name: "tags", Value: json.RawMessage(`["a","b"]`)},
			{Name: "empty"},
		},
	})

	require.Len(t, v.Attributes, 8)
	assert.Equal(t, domain.TextAttribute{Text: "blue"}, v.Attributes[0].Value)
	assert.Equal(t, domain.TextAttribute{Text: "42"}, v.Attributes[1].Value)
	assert.Equal(t, domain.TextAttribute{Text: "true"}, v.Attributes[2].Value)
	assert.Equal(t, domain.ReferenceAttribute{TypeID: "product", ID: "b1"}, v.Attributes[3].Value)
	assert.Equal(t, domain.TextAttribute{Text: "Ceramic"}, v.Attributes[4].Value)
	assert.Equal(t, domain.TextAttribute{Text: "Matte"}, v.Attributes[5].Value)
	assert.Nil(t, v.Attributes[6].Value)
	assert.Nil(t, v.Attributes[7].Value)
}

func TestFormatMoney(t *testing.T) {
	m := FormatMoney(platform.Money{CentAmount: 5999, CurrencyCode: "USD"})
	assert.Equal(t, "59.99", m.Amount.StringFixed(2))
	assert.Equal(t, "USD", FormatMoney(platform.Money{}).CurrencyCode)
}
