package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-graph/internal/app/commerce/domain"
	"github.com/murkotick/storefront-graph/internal/app/commerce/repo"
	"github.com/murkotick/storefront-graph/internal/models/m_placement"
)

// Reader queries the placements table.
type Reader struct {
	Client *spanner.Client
}

func NewReader(client *spanner.Client) *Reader {
	return &Reader{Client: client}
}

// ListStale returns placements that never completed and were last touched
// before the cutoff, oldest first.
func (r *Reader) ListStale(ctx context.Context, updatedBefore time.Time, limit int) ([]*domain.Placement, error) {
	stmt := spanner.Statement{
		SQL: `SELECT ` + strings.Join(m_placement.AllColumns, ", ") + `
		      FROM ` + m_placement.TableName + `
		      WHERE step != @completed AND updated_at < @cutoff
		      ORDER BY updated_at
		      LIMIT @limit`,
		Params: map[string]interface{}{
			"completed": string(domain.StepCompleted),
			"cutoff":    updatedBefore.UTC(),
			"limit":     int64(limit),
		},
	}

	iter := r.Client.Single().Query(ctx, stmt)
	defer iter.Stop()

	var out []*domain.Placement
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("query stale placements: %w", err)
		}
		var pr m_placement.Row
		if err := row.ToStruct(&pr); err != nil {
			return nil, fmt.Errorf("decode placement row: %w", err)
		}
		out = append(out, repo.FromRow(&pr))
	}
	return out, nil
}
