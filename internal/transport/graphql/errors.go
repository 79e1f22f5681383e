package graphql

import (
	"context"
	"errors"
	"net/http"

	"google.golang.org/grpc/codes"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/platform"
)

// Error is a resolver error with a status-like code in its extensions.
type Error struct {
	Message string
	Code    codes.Code
	Status  int
	extra   map[string]any
}

func (e *Error) Error() string { return e.Message }

// Extensions is read by graphql-go when rendering the error.
func (e *Error) Extensions() map[string]any {
	ext := map[string]any{
		"code":   e.Status,
		"status": statusName(e.Code),
	}
	for k, v := range e.extra {
		ext[k] = v
	}
	return ext
}

// codeOf classifies an application error.
func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, domain.ErrNotFound):
		return codes.NotFound
	case errors.Is(err, domain.ErrInvalidArgument):
		return codes.InvalidArgument
	case errors.Is(err, domain.ErrEmptyCart):
		return codes.FailedPrecondition
	case platform.IsConflict(err):
		return codes.Aborted
	}
	return codes.Internal
}

func httpStatus(c codes.Code) int {
	switch c {
	case codes.NotFound:
		return http.StatusNotFound
	case codes.InvalidArgument, codes.FailedPrecondition:
		return http.StatusBadRequest
	case codes.Aborted:
		return http.StatusConflict
	case codes.Canceled:
		return 499
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func statusName(c codes.Code) string {
	switch c {
	case codes.NotFound:
		return "NOT_FOUND"
	case codes.InvalidArgument:
		return "INVALID_ARGUMENT"
	case codes.FailedPrecondition:
		return "FAILED_PRECONDITION"
	case codes.Aborted:
		return "CONFLICT"
	case codes.Canceled:
		return "CANCELED"
	case codes.DeadlineExceeded:
		return "DEADLINE_EXCEEDED"
	case codes.OutOfRange:
		return "OUT_OF_RANGE"
	default:
		return "INTERNAL"
	}
}

// mapError translates application errors into resolver errors. Placement
// failures carry the identifiers of what was already created.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr
	}

	code := codeOf(err)
	out := &Error{Message: err.Error(), Code: code, Status: httpStatus(code)}

	var perr *domain.PlacementError
	if errors.As(err, &perr) {
		out.extra = map[string]any{
			"placementId": perr.PlacementID,
			"step":        string(perr.Step),
		}
		if perr.ShoppingListID != "" {
			out.extra["shoppingListId"] = perr.ShoppingListID
		}
		if perr.CartID != "" {
			out.extra["cartId"] = perr.CartID
		}
		if perr.OrderID != "" {
			out.extra["orderId"] = perr.OrderID
		}
	}
	return out
}

func invalidArgument(msg string) *Error {
	return &Error{Message: msg, Code: codes.InvalidArgument, Status: http.StatusBadRequest}
}
