package get_product

import (
	"context"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
)

type Handler struct {
	catalog contracts.Catalog
}

func NewHandler(c contracts.Catalog) *Handler {
	return &Handler{catalog: c}
}

// Execute fails with domain.ErrProductNotFound for unknown ids.
func (h *Handler) Execute(ctx context.Context, productID string) (*domain.Product, error) {
	return h.catalog.FetchProduct(ctx, productID)
}
