package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
)

func TestPlan_SkipsNil(t *testing.T) {
	p := NewPlan()
	assert.True(t, p.IsEmpty())

	p.Add(nil, spanner.Delete("placements", spanner.Key{"a"}), nil)
	assert.False(t, p.IsEmpty())
	assert.Equal(t, 1, p.Len())

	var nilPlan *Plan
	assert.True(t, nilPlan.IsEmpty())
	assert.Equal(t, 0, nilPlan.Len())
}

func TestAdapter_EmptyPlanIsNoop(t *testing.T) {
	a := NewAdapter(nil)
	assert.NoError(t, a.Apply(context.Background(), NewPlan()))
	assert.NoError(t, a.Apply(context.Background(), nil))
}

func TestAdapter_RequiresClient(t *testing.T) {
	p := NewPlan()
	p.Add(spanner.Delete("placements", spanner.Key{"a"}))
	assert.ErrorIs(t, NewAdapter(nil).Apply(context.Background(), p), ErrNoClient)
}
