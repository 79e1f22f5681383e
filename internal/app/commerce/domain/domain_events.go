package domain

import "time"

// DomainEvent is a fact recorded by the placement journal's outbox.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// OrderPlacedEvent is raised when all placement steps succeeded.
type OrderPlacedEvent struct {
	PlacementID    string
	OrderID        string
	OrderNumber    string
	CartID         string
	ShoppingListID string
	CustomerEmail  string
	PlacedAt       time.Time
}

func (e *OrderPlacedEvent) EventType() string     { return "order.placed" }
func (e *OrderPlacedEvent) AggregateID() string   { return e.PlacementID }
func (e *OrderPlacedEvent) OccurredAt() time.Time { return e.PlacedAt }

// PlacementFailedEvent is raised when a placement stops part way.
type PlacementFailedEvent struct {
	PlacementID    string
	FailedAfter    PlacementStep
	ShoppingListID string
	CartID         string
	OrderID        string
	Reason         string
	FailedAt       time.Time
}

func (e *PlacementFailedEvent) EventType() string     { return "order.placement_failed" }
func (e *PlacementFailedEvent) AggregateID() string   { return e.PlacementID }
func (e *PlacementFailedEvent) OccurredAt() time.Time { return e.FailedAt }
