package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roadtrip/core"
)

// RandomWalk moves from city to city, choosing each next city uniformly at
// random among the neighbours, until it stands on the goal.
//
// It keeps no visited set and may walk in circles, so it has no termination
// guarantee: on any graph with a cycle it can run forever. Bound it with
// WithMaxSteps or a cancellable context. A city without roads ends the walk
// with Found == false.
type RandomWalk struct{}

// Name implements Strategy.
func (RandomWalk) Name() string { return "random-walk" }

// Run implements Strategy.
//
// Errors: input validation errors, ctx.Err() on cancellation, hook errors, and
// ErrStepLimit when MaxSteps moves did not reach the goal. On ErrStepLimit the
// partial walk is returned alongside the error.
func (s RandomWalk) Run(ctx context.Context, g *core.Graph, start, goal *core.City, opts ...Option) (*Result, error) {
	r, err := newRunner(ctx, s.Name(), g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	city := start
	path := core.Path{}
	for {
		if err = r.canceled(); err != nil {
			return nil, err
		}
		if err = r.visit(city); err != nil {
			return nil, err
		}
		if city == goal {
			return r.found(path)
		}
		if r.opts.MaxSteps > 0 && len(path) >= r.opts.MaxSteps {
			res := r.notFound()
			res.Path = path
			return res, fmt.Errorf("%w: %d steps from %q", ErrStepLimit, len(path), start.Name())
		}

		nbs, err := r.g.AdjacentCities(city)
		if err != nil {
			return nil, fmt.Errorf("search: neighbors of %q: %w", city.Name(), err)
		}
		if len(nbs) == 0 {
			return r.notFound(), nil
		}
		city = nbs[r.opts.Rand.Intn(len(nbs))]
		path = append(path, city)
	}
}
