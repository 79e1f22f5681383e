package shared

import (
	"encoding/json"
	"fmt"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
)

// MarshalDomainEventPayload converts a domain event into the outbox JSON payload.
func MarshalDomainEventPayload(ev domain.DomainEvent) (string, error) {
	if ev == nil {
		return "{}", nil
	}

	var payload map[string]interface{}
	switch e := ev.(type) {
	case *domain.OrderPlacedEvent:
		payload = map[string]interface{}{
			"placement_id":     e.PlacementID,
			"order_id":         e.OrderID,
			"order_number":     e.OrderNumber,
			"cart_id":          e.CartID,
			"shopping_list_id": e.ShoppingListID,
			"customer_email":   e.CustomerEmail,
			"occurred_at":      e.OccurredAt(),
		}

	case *domain.PlacementFailedEvent:
		payload = map[string]interface{}{
			"placement_id":     e.PlacementID,
			"failed_after":     string(e.FailedAfter),
			"shopping_list_id": e.ShoppingListID,
			"cart_id":          e.CartID,
			"order_id":         e.OrderID,
			"reason":           e.Reason,
			"occurred_at":      e.OccurredAt(),
		}

	default:
		b, err := json.Marshal(ev)
		if err != nil {
			return "", fmt.Errorf("marshal outbox payload for %T: %w", ev, err)
		}
		return string(b), nil
	}

	b, err := json.Marshal(payload)
	return string(b), err
}
