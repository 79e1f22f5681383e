package committer

import (
	"context"
	"errors"

	"cloud.google.com/go/spanner"
)

var ErrNoClient = errors.New("committer: spanner client is nil")

// Adapter applies plans against a Spanner database.
type Adapter struct {
	client *spanner.Client
}

func NewAdapter(client *spanner.Client) *Adapter {
	return &Adapter{client: client}
}

// Apply commits all mutations of plan atomically. An empty plan is a no-op.
func (a *Adapter) Apply(ctx context.Context, plan *Plan) error {
	if plan.IsEmpty() {
		return nil
	}
	if a.client == nil {
		return ErrNoClient
	}
	_, err := a.client.Apply(ctx, plan.Mutations())
	return err
}
