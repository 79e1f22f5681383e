package contracts

import (
	"context"
	"time"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
)

// PlacementJournal records the progress of order placements.
type PlacementJournal interface {
	// Save writes the placement's changed columns and pending domain events.
	Save(ctx context.Context, p *domain.Placement) error
}

// PlacementReader lists journaled placements for reconciliation.
type PlacementReader interface {
	// ListStale returns placements not in a terminal-success state and last
	// updated before the cutoff.
	ListStale(ctx context.Context, updatedBefore time.Time, limit int) ([]*domain.Placement, error)
}

// IdempotencyStore guards placeOrder against duplicate submissions.
type IdempotencyStore interface {
	// Reserve claims key. When the key already completed it returns the
	// stored order id and reserved=false; when it is held by an in-flight
	// placement it returns "" and reserved=false.
	Reserve(ctx context.Context, key string) (orderID string, reserved bool, err error)
	Complete(ctx context.Context, key, orderID string) error
	Release(ctx context.Context, key string) error
}
