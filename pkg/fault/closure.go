package fault

import (
	"context"

	"github.com/matzehuels/pagen/pkg/constraint"
	"github.com/matzehuels/pagen/pkg/depgraph"
	"github.com/matzehuels/pagen/pkg/property"
)

// checkEvery is how many properties the closure expands between context
// checks.
const checkEvery = 64

// Result is the output of [Closure].
type Result struct {
	// Constraints are the constraints the repair model must include:
	// failing constraints first, then those pulled in during the walk.
	Constraints *constraint.Set
	// Faulty holds every property that may have to change.
	Faulty property.Set
}

// Closure returns the constraints and properties involved in repairing the
// failing constraints among cs. Invalid constraints are ignored. Closure
// always terminates: each property is expanded at most once. It returns
// ctx.Err() if ctx is done before the walk finishes.
func Closure(ctx context.Context, cs []*constraint.Constraint, g *depgraph.Graph) (*Result, error) {
	idx := constraint.BuildIndex(g, cs)
	res := &Result{
		Constraints: constraint.NewSet(),
		Faulty:      property.NewSet(),
	}

	// A property enters the queue at most once.
	var queue []property.Property
	queued := property.NewSet()
	enqueue := func(p property.Property) {
		if !queued.Add(p) {
			return
		}
		queue = append(queue, p)
	}

	for _, c := range cs {
		if !c.Valid() || c.Verdict() {
			continue
		}
		res.Constraints.Add(c)
		for _, p := range c.Properties(g, nil).Sorted() {
			enqueue(p)
		}
	}

	for n := 0; len(queue) > 0; n++ {
		if n%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		p := queue[0]
		queue = queue[1:]
		if !res.Faulty.Add(p) {
			continue
		}
		for _, c := range idx[p] {
			more := c.Properties(g, &p)
			if len(more) == 0 {
				continue
			}
			res.Constraints.Add(c)
			for _, q := range more.Sorted() {
				enqueue(q)
			}
		}
		for _, d := range g.Influences(p, false) {
			enqueue(d.From)
		}
	}
	return res, nil
}
