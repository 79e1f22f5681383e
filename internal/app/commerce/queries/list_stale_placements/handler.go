package list_stale_placements

import (
	"context"
	"time"

	"github.com/murkotick/storefront-graph/internal/app/commerce/contracts"
	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/dto"
	"github.com/murkotick/storefront-graph/internal/pkg/clock"
)

const (
	DefaultGrace = 15 * time.Minute
	DefaultLimit = 200
)

type Query struct {
	// Grace skips placements touched more recently, as they may still be running.
	Grace time.Duration
	Limit int
}

type Handler struct {
	reader contracts.PlacementReader
	clock  clock.Clock
}

func NewHandler(reader contracts.PlacementReader, clk clock.Clock) *Handler {
	return &Handler{reader: reader, clock: clk}
}

// Execute lists unfinished placements with what each left on the platform.
func (h *Handler) Execute(ctx context.Context, q Query) ([]dto.StalePlacement, error) {
	if q.Grace <= 0 {
		q.Grace = DefaultGrace
	}
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}

	placements, err := h.reader.ListStale(ctx, h.clock.Now().Add(-q.Grace), q.Limit)
	if err != nil {
		return nil, err
	}

	out := make([]dto.StalePlacement, 0, len(placements))
	for _, p := range placements {
		if p.Step() == domain.StepCompleted {
			continue
		}
		out = append(out, dto.StalePlacement{
			PlacementID:    p.ID(),
			Step:           string(p.Step()),
			FailedAfter:    string(p.FailedAfter()),
			Residue:        string(p.Residue()),
			ShoppingListID: p.ShoppingListID(),
			CartID:         p.CartID(),
			OrderID:        p.OrderID(),
			OrderNumber:    p.OrderNumber(),
			LastError:      p.LastError(),
			UpdatedAt:      p.UpdatedAt(),
		})
	}
	return out, nil
}
