package domain

import "time"

// Field constants for change tracking
const (
	FieldStep                = "step"
	FieldFailedAfter         = "failed_after"
	FieldShoppingListVersion = "shopping_list_version"
	FieldCartID              = "cart_id"
	FieldOrderID             = "order_id"
	FieldOrderNumber         = "order_number"
	FieldLastError           = "last_error"
)

// PlacementStep is a stage of the order placement workflow.
type PlacementStep string

const (
	// StepStarted: the shopping list was loaded and is non-empty.
	StepStarted      PlacementStep = "started"
	StepCartCreated  PlacementStep = "cart_created"
	StepOrderCreated PlacementStep = "order_created"
	// StepCompleted: the shopping list was deleted.
	StepCompleted PlacementStep = "completed"
	StepFailed    PlacementStep = "failed"
)

// Placement journals one run of the place-order workflow. Platform writes
// are not transactional; the journal is what makes partial runs repairable.
type Placement struct {
	id                  string
	idempotencyKey      string
	shoppingListID      string
	shoppingListVersion int64
	customerEmail       string
	step                PlacementStep
	failedAfter         PlacementStep
	cartID              string
	orderID             string
	orderNumber         string
	lastError           string
	createdAt           time.Time
	updatedAt           time.Time
	persisted           bool
	changes             *ChangeTracker
	events              []DomainEvent
}

// StartPlacement begins a placement for a loaded shopping list.
func StartPlacement(id, idempotencyKey, shoppingListID string, shoppingListVersion int64, customerEmail string, now time.Time) *Placement {
	return &Placement{
		id:                  id,
		idempotencyKey:      idempotencyKey,
		shoppingListID:      shoppingListID,
		shoppingListVersion: shoppingListVersion,
		customerEmail:       customerEmail,
		step:                StepStarted,
		createdAt:           now,
		updatedAt:           now,
		changes:             NewChangeTracker(),
	}
}

// ReconstructPlacement rebuilds a Placement from the journal.
func ReconstructPlacement(
	id, idempotencyKey, shoppingListID string,
	shoppingListVersion int64,
	customerEmail string,
	step, failedAfter PlacementStep,
	cartID, orderID, orderNumber, lastError string,
	createdAt, updatedAt time.Time,
) *Placement {
	return &Placement{
		id:                  id,
		idempotencyKey:      idempotencyKey,
		shoppingListID:      shoppingListID,
		shoppingListVersion: shoppingListVersion,
		customerEmail:       customerEmail,
		step:                step,
		failedAfter:         failedAfter,
		cartID:              cartID,
		orderID:             orderID,
		orderNumber:         orderNumber,
		lastError:           lastError,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
		persisted:           true,
		changes:             NewChangeTracker(),
	}
}

func (p *Placement) ID() string                  { return p.id }
func (p *Placement) IdempotencyKey() string      { return p.idempotencyKey }
func (p *Placement) ShoppingListID() string      { return p.shoppingListID }
func (p *Placement) ShoppingListVersion() int64  { return p.shoppingListVersion }
func (p *Placement) CustomerEmail() string       { return p.customerEmail }
func (p *Placement) Step() PlacementStep         { return p.step }
func (p *Placement) FailedAfter() PlacementStep  { return p.failedAfter }
func (p *Placement) CartID() string              { return p.cartID }
func (p *Placement) OrderID() string             { return p.orderID }
func (p *Placement) OrderNumber() string         { return p.orderNumber }
func (p *Placement) LastError() string           { return p.lastError }
func (p *Placement) CreatedAt() time.Time        { return p.createdAt }
func (p *Placement) UpdatedAt() time.Time        { return p.updatedAt }
func (p *Placement) Changes() *ChangeTracker     { return p.changes }
func (p *Placement) DomainEvents() []DomainEvent { return p.events }

// Persisted reports whether the placement row already exists.
func (p *Placement) Persisted() bool { return p.persisted }

// MarkPersisted is called by the journal after a successful write.
func (p *Placement) MarkPersisted() {
	p.persisted = true
	p.changes.Clear()
	p.events = nil
}

// Terminal reports whether the workflow has finished either way.
func (p *Placement) Terminal() bool {
	return p.step == StepCompleted || p.step == StepFailed
}

func (p *Placement) CartCreated(cartID string, now time.Time) {
	p.cartID = cartID
	p.advance(StepCartCreated, now, FieldCartID)
}

func (p *Placement) OrderCreated(orderID, orderNumber string, now time.Time) {
	p.orderID = orderID
	p.orderNumber = orderNumber
	p.advance(StepOrderCreated, now, FieldOrderID, FieldOrderNumber)
}

func (p *Placement) Complete(now time.Time) {
	p.advance(StepCompleted, now)
	p.events = append(p.events, &OrderPlacedEvent{
		PlacementID:    p.id,
		OrderID:        p.orderID,
		OrderNumber:    p.orderNumber,
		CartID:         p.cartID,
		ShoppingListID: p.shoppingListID,
		CustomerEmail:  p.customerEmail,
		PlacedAt:       now,
	})
}

// Fail records the failure and returns the PlacementError for the caller.
func (p *Placement) Fail(cause error, now time.Time) *PlacementError {
	p.failedAfter = p.step
	p.lastError = cause.Error()
	p.advance(StepFailed, now, FieldFailedAfter, FieldLastError)
	p.events = append(p.events, &PlacementFailedEvent{
		PlacementID:    p.id,
		FailedAfter:    p.failedAfter,
		ShoppingListID: p.shoppingListID,
		CartID:         p.cartID,
		OrderID:        p.orderID,
		Reason:         p.lastError,
		FailedAt:       now,
	})
	return &PlacementError{
		PlacementID:    p.id,
		Step:           p.failedAfter,
		ShoppingListID: p.shoppingListID,
		CartID:         p.cartID,
		OrderID:        p.orderID,
		Err:            cause,
	}
}

func (p *Placement) advance(step PlacementStep, now time.Time, fields ...string) {
	p.step = step
	p.updatedAt = now
	p.changes.MarkDirty(append(fields, FieldStep)...)
}

// Residue names what an unfinished placement left behind on the platform.
type Residue string

const (
	ResidueNone          Residue = "none"
	ResidueOrphanedCart  Residue = "orphaned_cart"
	ResidueShoppingList  Residue = "ghost_shopping_list"
	ResidueNotApplicable Residue = ""
)

// Residue reports the platform resources left by a placement that stopped
// before completion. Completed placements have none to report.
func (p *Placement) Residue() Residue {
	reached := p.step
	if p.step == StepFailed {
		reached = p.failedAfter
	}
	switch reached {
	case StepCompleted:
		return ResidueNotApplicable
	case StepCartCreated:
		return ResidueOrphanedCart
	case StepOrderCreated:
		return ResidueShoppingList
	default:
		return ResidueNone
	}
}
