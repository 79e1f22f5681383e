package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/models/m_outbox"
)

// OutboxRepo builds outbox mutations; it never applies them.
type OutboxRepo struct{}

func NewOutboxRepo() *OutboxRepo {
	return &OutboxRepo{}
}

func (r *OutboxRepo) InsertMut(e *contracts.OutboxEvent) *spanner.Mutation {
	if e == nil {
		return nil
	}
	return m_outbox.InsertMutation(buildOutboxValues(e))
}

func buildOutboxValues(e *contracts.OutboxEvent) map[string]interface{} {
	status := e.Status
	if status == "" {
		status = m_outbox.StatusPending
	}
	return m_outbox.BuildInsertMap(e.EventID, e.EventType, e.AggregateID, e.PayloadJSON, status, e.CreatedAtUTC.UTC())
}
