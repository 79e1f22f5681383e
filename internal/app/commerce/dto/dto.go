package dto

import (
	"time"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
)

// ProductPage is one page of a product listing.
type ProductPage struct {
	// Total is the platform's total for the query, or the number of results
	// when a client-side filter narrowed the page.
	Total   int
	Offset  int
	Limit   int
	Results []*domain.Product
}

// StalePlacement is a placement that stopped before completion.
type StalePlacement struct {
	PlacementID    string    `json:"placementId"`
	Step           string    `json:"step"`
	FailedAfter    string    `json:"failedAfter,omitempty"`
	Residue        string    `json:"residue"`
	ShoppingListID string    `json:"shoppingListId"`
	CartID         string    `json:"cartId,omitempty"`
	OrderID        string    `json:"orderId,omitempty"`
	OrderNumber    string    `json:"orderNumber,omitempty"`
	LastError      string    `json:"lastError,omitempty"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
