// Package journal persists order placements and their outbox events.
package journal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/usecases/shared"
	"github.com/murkotick/storefront-graph/internal/pkg/clock"
	"github.com/murkotick/storefront-graph/internal/pkg/committer"
)

// SpannerJournal writes each placement change and its domain events in one commit.
type SpannerJournal struct {
	Placements contracts.PlacementRepo
	Outbox     contracts.OutboxRepo
	Committer  contracts.Committer
	Clock      clock.Clock
}

func NewSpannerJournal(placements contracts.PlacementRepo, outbox contracts.OutboxRepo, c contracts.Committer, clk clock.Clock) *SpannerJournal {
	return &SpannerJournal{Placements: placements, Outbox: outbox, Committer: c, Clock: clk}
}

func (j *SpannerJournal) Save(ctx context.Context, p *domain.Placement) error {
	plan, err := j.Plan(p)
	if err != nil {
		return err
	}
	if err := j.Committer.Apply(ctx, plan); err != nil {
		return fmt.Errorf("journal placement %s: %w", p.ID(), err)
	}
	p.MarkPersisted()
	return nil
}

// Plan builds the mutations for the placement's pending changes.
func (j *SpannerJournal) Plan(p *domain.Placement) (*committer.Plan, error) {
	plan := committer.NewPlan()
	if !p.Persisted() {
		plan.Add(j.Placements.InsertMut(p))
	} else {
		plan.Add(j.Placements.UpdateMut(p))
	}

	now := j.Clock.Now()
	for _, ev := range p.DomainEvents() {
		payload, err := shared.MarshalDomainEventPayload(ev)
		if err != nil {
			return nil, err
		}
		plan.Add(j.Outbox.InsertMut(&contracts.OutboxEvent{
			EventID:      uuid.NewString(),
			EventType:    ev.EventType(),
			AggregateID:  ev.AggregateID(),
			PayloadJSON:  payload,
			CreatedAtUTC: now,
		}))
	}
	return plan, nil
}

// Nop discards placements. Used when no journal database is configured.
type Nop struct{}

func (Nop) Save(_ context.Context, p *domain.Placement) error {
	p.MarkPersisted()
	return nil
}
