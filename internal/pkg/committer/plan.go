package committer

import "cloud.google.com/go/spanner"

// Plan collects mutations to be applied in one read-write transaction.
type Plan struct {
	mutations []*spanner.Mutation
}

func NewPlan() *Plan {
	return &Plan{}
}

// Add appends m; nil mutations (nothing to write) are skipped.
func (p *Plan) Add(ms ...*spanner.Mutation) {
	for _, m := range ms {
		if m != nil {
			p.mutations = append(p.mutations, m)
		}
	}
}

func (p *Plan) IsEmpty() bool {
	return p == nil || len(p.mutations) == 0
}

func (p *Plan) Len() int {
	if p == nil {
		return 0
	}
	return len(p.mutations)
}

func (p *Plan) Mutations() []*spanner.Mutation {
	return p.mutations
}
