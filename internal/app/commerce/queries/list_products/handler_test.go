package list_products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-graph/internal/app/commerce/catalog"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/fakeplatform"
)

func intp(v int) *int { return &v }

func names(ps []*domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name.EnUS
	}
	return out
}

func newHandler() (*Handler, *fakeplatform.Platform) {
	fp := fakeplatform.New()
	fp.AddCategory("c-mugs", "mugs", "Mugs")
	fp.AddProduct("1", "Blue Mug", 1500, "USD", "c-mugs")
	fp.AddProduct("2", "Red Mug", 900, "USD", "c-mugs")
	fp.AddProduct("3", "Plate", 2500, "USD")
	fp.AddProduct("4", "Green MUG", 1200, "USD")
	return NewHandler(catalog.NewClient(fp, nil)), fp
}

func TestExecute_Defaults(t *testing.T) {
	h, fp := newHandler()

	page, err := h.Execute(context.Background(), Query{})
	require.NoError(t, err)
	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 0, page.Offset)
	assert.Equal(t, 4, page.Total)
	assert.Len(t, page.Results, 4)
	assert.Equal(t, 20, fp.LastSearch.Limit)
}

func TestExecute_LimitIsCapped(t *testing.T) {
	h, fp := newHandler()

	page, err := h.Execute(context.Background(), Query{Limit: intp(10_000)})
	require.NoError(t, err)
	assert.Equal(t, MaxLimit, page.Limit)
	assert.Equal(t, MaxLimit, fp.LastSearch.Limit)
}

func TestExecute_NegativePaginationRejected(t *testing.T) {
	h, _ := newHandler()

	_, err := h.Execute(context.Background(), Query{Offset: intp(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestExecute_CategoryKeyIsPushedDown(t *testing.T) {
	h, fp := newHandler()

	page, err := h.Execute(context.Background(), Query{CategoryKey: "mugs", SortBy: SortName})
	require.NoError(t, err)
	assert.Equal(t, []string{`categories.id:"c-mugs"`}, fp.LastSearch.Filters)
	assert.Equal(t, "name.en-US asc", fp.LastSearch.Sort)
	assert.Equal(t, []string{"Blue Mug", "Red Mug"}, names(page.Results))
}

func TestExecute_UnknownCategoryIsEmptyPage(t *testing.T) {
	h, fp := newHandler()

	page, err := h.Execute(context.Background(), Query{CategoryKey: "nope", Limit: intp(5), Offset: intp(2)})
	require.NoError(t, err)
	assert.Equal(t, 0, page.Total)
	assert.Equal(t, 5, page.Limit)
	assert.Equal(t, 2, page.Offset)
	assert.Empty(t, page.Results)
	assert.Equal(t, 0, fp.CallCount("SearchProductProjections"))
}

func TestExecute_SearchIsCaseInsensitive(t *testing.T) {
	h, fp := newHandler()

	page, err := h.Execute(context.Background(), Query{Search: "mug", SortBy: SortName, SortOrder: Desc})
	require.NoError(t, err)
	assert.Equal(t, "mug", fp.LastSearch.Text)
	assert.Equal(t, "name.en-US desc", fp.LastSearch.Sort)
	assert.Equal(t, []string{"Red Mug", "Green MUG", "Blue Mug"}, names(page.Results))
	assert.Equal(t, 3, page.Total)
}

func TestExecute_PriceSortWithinPage(t *testing.T) {
	h, fp := newHandler()

	page, err := h.Execute(context.Background(), Query{SortBy: SortPrice})
	require.NoError(t, err)
	assert.Empty(t, fp.LastSearch.Sort)
	assert.Equal(t, []string{"Red Mug", "Green MUG", "Blue Mug", "Plate"}, names(page.Results))

	page, err = h.Execute(context.Background(), Query{SortBy: SortPrice, SortOrder: Desc})
	require.NoError(t, err)
	assert.Equal(t, []string{"Plate", "Blue Mug", "Green MUG", "Red Mug"}, names(page.Results))
}

func TestFilterBySearch_MatchesDescription(t *testing.T) {
	ps := []*domain.Product{
		{Name: domain.LocalizedText{EnUS: "Cup"}, Description: domain.LocalizedText{EnUS: "A STRASSE mug"}},
		{Name: domain.LocalizedText{EnUS: "Plate"}},
	}
	assert.Len(t, filterBySearch(ps, "strasse"), 1)
	assert.Len(t, filterBySearch(ps, "MUG"), 1)
	assert.Len(t, filterBySearch(ps, "bowl"), 0)
}
