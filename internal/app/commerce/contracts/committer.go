package contracts

import (
	"context"

	"github.com/murkotick/storefront-graph/internal/pkg/committer"
)

// Committer applies a mutation plan atomically.
type Committer interface {
	Apply(ctx context.Context, plan *committer.Plan) error
}
