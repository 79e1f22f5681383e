package contracts

import (
	"time"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
)

// OutboxRepo returns Spanner mutations for the transactional outbox; it does not apply them.
type OutboxRepo interface {
	InsertMut(e *OutboxEvent) *spanner.Mutation
}

// OutboxEvent is a domain event enriched for the outbox table.
type OutboxEvent struct {
	EventID      string
	EventType    string
	AggregateID  string
	PayloadJSON  string
	Status       string
	CreatedAtUTC time.Time
}

// PlacementRepo returns Spanner mutations for the placements table.
type PlacementRepo interface {
	InsertMut(p *domain.Placement) *spanner.Mutation
	// UpdateMut writes only the columns marked dirty (nil when nothing changed).
	UpdateMut(p *domain.Placement) *spanner.Mutation
}
