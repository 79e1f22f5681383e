package m_placement

const (
	TableName = "placements"

	ColPlacementID         = "placement_id"
	ColIdempotencyKey      = "idempotency_key"
	ColShoppingListID      = "shopping_list_id"
	ColShoppingListVersion = "shopping_list_version"
	ColCustomerEmail       = "customer_email"
	ColStep                = "step"
	ColFailedAfter         = "failed_after"
	ColCartID              = "cart_id"
	ColOrderID             = "order_id"
	ColOrderNumber         = "order_number"
	ColLastError           = "last_error"
	ColCreatedAt           = "created_at"
	ColUpdatedAt           = "updated_at"
)

// AllColumns in table order, for reads.
var AllColumns = []string{
	ColPlacementID, ColIdempotencyKey, ColShoppingListID, ColShoppingListVersion,
	ColCustomerEmail, ColStep, ColFailedAfter, ColCartID, ColOrderID, ColOrderNumber,
	ColLastError, ColCreatedAt, ColUpdatedAt,
}
