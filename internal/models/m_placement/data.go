package m_placement

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Row mirrors one placements row.
type Row struct {
	PlacementID         string             `spanner:"placement_id"`
	IdempotencyKey      spanner.NullString `spanner:"idempotency_key"`
	ShoppingListID      string             `spanner:"shopping_list_id"`
	ShoppingListVersion int64              `spanner:"shopping_list_version"`
	CustomerEmail       string             `spanner:"customer_email"`
	Step                string             `spanner:"step"`
	FailedAfter         spanner.NullString `spanner:"failed_after"`
	CartID              spanner.NullString `spanner:"cart_id"`
	OrderID             spanner.NullString `spanner:"order_id"`
	OrderNumber         spanner.NullString `spanner:"order_number"`
	LastError           spanner.NullString `spanner:"last_error"`
	CreatedAt           time.Time          `spanner:"created_at"`
	UpdatedAt           time.Time          `spanner:"updated_at"`
}

// NullableString maps "" to a NULL column value.
func NullableString(s string) spanner.NullString {
	return spanner.NullString{StringVal: s, Valid: s != ""}
}

// BuildUpsertMap prepares every column of a placement row.
func BuildUpsertMap(placementID, idempotencyKey, shoppingListID string, shoppingListVersion int64,
	customerEmail, step, failedAfter, cartID, orderID, orderNumber, lastError string,
	createdAt, updatedAt time.Time) map[string]interface{} {
	return map[string]interface{}{
		ColPlacementID:         placementID,
		ColIdempotencyKey:      NullableString(idempotencyKey),
		ColShoppingListID:      shoppingListID,
		ColShoppingListVersion: shoppingListVersion,
		ColCustomerEmail:       customerEmail,
		ColStep:                step,
		ColFailedAfter:         NullableString(failedAfter),
		ColCartID:              NullableString(cartID),
		ColOrderID:             NullableString(orderID),
		ColOrderNumber:         NullableString(orderNumber),
		ColLastError:           NullableString(lastError),
		ColCreatedAt:           createdAt,
		ColUpdatedAt:           updatedAt,
	}
}

// UpsertMutation writes a full row. Used for the first write so a retried
// insert does not fail on an existing key.
func UpsertMutation(values map[string]interface{}) *spanner.Mutation {
	return spanner.InsertOrUpdateMap(TableName, values)
}

// UpdateMutation writes the given columns of an existing row.
func UpdateMutation(placementID string, values map[string]interface{}) *spanner.Mutation {
	cols := []string{ColPlacementID}
	vals := []interface{}{placementID}
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.Update(TableName, cols, vals)
}
