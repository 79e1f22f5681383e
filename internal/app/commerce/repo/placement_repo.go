package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/models/m_placement"
)

// PlacementRepo builds placements mutations; it never applies them.
type PlacementRepo struct{}

func NewPlacementRepo() *PlacementRepo {
	return &PlacementRepo{}
}

// buildUpsertValues is unexported so tests can inspect the map directly.
func buildUpsertValues(p *domain.Placement) map[string]interface{} {
	return m_placement.BuildUpsertMap(
		p.ID(), p.IdempotencyKey(), p.ShoppingListID(), p.ShoppingListVersion(),
		p.CustomerEmail(), string(p.Step()), string(p.FailedAfter()),
		p.CartID(), p.OrderID(), p.OrderNumber(), p.LastError(),
		p.CreatedAt().UTC(), p.UpdatedAt().UTC(),
	)
}

// InsertMut writes the whole row.
func (r *PlacementRepo) InsertMut(p *domain.Placement) *spanner.Mutation {
	if p == nil {
		return nil
	}
	return m_placement.UpsertMutation(buildUpsertValues(p))
}

// buildUpdateValues returns only the dirty columns plus updated_at.
func buildUpdateValues(p *domain.Placement) map[string]interface{} {
	ch := p.Changes()
	if ch == nil || !ch.HasChanges() {
		return nil
	}

	updates := map[string]interface{}{}
	if ch.Dirty(domain.FieldStep) {
		updates[m_placement.ColStep] = string(p.Step())
	}
	if ch.Dirty(domain.FieldFailedAfter) {
		updates[m_placement.ColFailedAfter] = m_placement.NullableString(string(p.FailedAfter()))
	}
	if ch.Dirty(domain.FieldShoppingListVersion) {
		updates[m_placement.ColShoppingListVersion] = p.ShoppingListVersion()
	}
	if ch.Dirty(domain.FieldCartID) {
		updates[m_placement.ColCartID] = m_placement.NullableString(p.CartID())
	}
	if ch.Dirty(domain.FieldOrderID) {
		updates[m_placement.ColOrderID] = m_placement.NullableString(p.OrderID())
	}
	if ch.Dirty(domain.FieldOrderNumber) {
		updates[m_placement.ColOrderNumber] = m_placement.NullableString(p.OrderNumber())
	}
	if ch.Dirty(domain.FieldLastError) {
		updates[m_placement.ColLastError] = m_placement.NullableString(p.LastError())
	}
	updates[m_placement.ColUpdatedAt] = p.UpdatedAt().UTC()
	return updates
}

// UpdateMut writes the columns the placement's ChangeTracker marked dirty.
func (r *PlacementRepo) UpdateMut(p *domain.Placement) *spanner.Mutation {
	if p == nil {
		return nil
	}
	updates := buildUpdateValues(p)
	if updates == nil {
		return nil
	}
	return m_placement.UpdateMutation(p.ID(), updates)
}

// FromRow rebuilds a placement read from the journal.
func FromRow(r *m_placement.Row) *domain.Placement {
	return domain.ReconstructPlacement(
		r.PlacementID, r.IdempotencyKey.StringVal, r.ShoppingListID, r.ShoppingListVersion,
		r.CustomerEmail, domain.PlacementStep(r.Step), domain.PlacementStep(r.FailedAfter.StringVal),
		r.CartID.StringVal, r.OrderID.StringVal, r.OrderNumber.StringVal, r.LastError.StringVal,
		r.CreatedAt, r.UpdatedAt,
	)
}
