package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below unwraps to exactly one kind.
var (
	// ErrNotFound indicates an absent entity.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument indicates missing or contradictory caller input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUpstreamFailure indicates the commerce platform call itself failed.
	ErrUpstreamFailure = errors.New("upstream failure")

	// ErrEmptyCart indicates an order was requested for a cart without items.
	ErrEmptyCart = errors.New("cart is empty")
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

func newKind(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}

// Not found
var (
	ErrProductNotFound  = newKind(ErrNotFound, "product not found")
	ErrCartNotFound     = newKind(ErrNotFound, "cart not found")
	ErrProductNotInCart = newKind(ErrNotFound, "product not found in cart")
	ErrOrderNotFound    = newKind(ErrNotFound, "order not found")
)

// Invalid argument
var (
	// ErrOrderLookupKeyRequired indicates neither an order id nor an order number was supplied.
	ErrOrderLookupKeyRequired = newKind(ErrInvalidArgument, "either id or orderNumber must be provided")

	ErrInvalidQuantity        = newKind(ErrInvalidArgument, "quantity must be greater than zero")
	ErrQuantityTooLarge       = newKind(ErrInvalidArgument, "quantity exceeds the per-item maximum")
	ErrInvalidPagination      = newKind(ErrInvalidArgument, "limit and offset must not be negative")
	ErrCustomerEmailRequired  = newKind(ErrInvalidArgument, "customer email is required")
	ErrShippingAddressInvalid = newKind(ErrInvalidArgument, "shipping address requires a country")

	// ErrPlacementInProgress indicates another placement holds the same idempotency key.
	ErrPlacementInProgress = newKind(ErrInvalidArgument, "placement already in progress")
)

// UpstreamError wraps a failed commerce platform call. It matches both
// ErrUpstreamFailure and the underlying platform error.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() []error {
	return []error{ErrUpstreamFailure, e.Err}
}

// Upstream wraps err as an UpstreamError unless it already is a domain error.
func Upstream(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrEmptyCart) || errors.Is(err, ErrUpstreamFailure) {
		return err
	}
	return &UpstreamError{Op: op, Err: err}
}

// PlacementError reports a placement that failed after it started. Step is
// the last step that succeeded.
// It carries the identifiers needed to clean up.
type PlacementError struct {
	PlacementID    string
	Step           PlacementStep
	ShoppingListID string
	CartID         string
	OrderID        string
	Err            error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("place order failed after %s: %v", e.Step, e.Err)
}

func (e *PlacementError) Unwrap() error { return e.Err }
