package search

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roadtrip/core"
)

// node pairs a city with the path taken from start to reach it.
// cost is the summed road distance of that path, start hop included.
type node struct {
	city *core.City
	path core.Path
	cost float64
}

// extend returns the child node reached over road r. The child's path never
// shares a backing array with its parent's.
func (n node) extend(next *core.City, r *core.Road) node {
	p := make(core.Path, len(n.path), len(n.path)+1)
	copy(p, n.path)
	return node{city: next, path: append(p, next), cost: n.cost + r.Distance()}
}

// runner holds the mutable state of a single strategy run.
type runner struct {
	name     string
	ctx      context.Context
	g        *core.Graph
	start    *core.City
	goal     *core.City
	opts     Options
	visited  map[*core.City]bool
	expanded int
}

// newRunner validates inputs in order (graph, endpoints, membership, options)
// and returns the run state.
func newRunner(ctx context.Context, name string, g *core.Graph, start, goal *core.City, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if start == nil || goal == nil {
		return nil, ErrNilCity
	}
	if !g.HasCity(start) {
		return nil, fmt.Errorf("%w: start %v", ErrCityNotFound, start)
	}
	if !g.HasCity(goal) {
		return nil, fmt.Errorf("%w: goal %v", ErrCityNotFound, goal)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return &runner{
		name:    name,
		ctx:     ctx,
		g:       g,
		start:   start,
		goal:    goal,
		opts:    o,
		visited: make(map[*core.City]bool),
	}, nil
}

// canceled reports the context error, if any.
func (r *runner) canceled() error {
	select {
	case <-r.ctx.Done():
		return r.ctx.Err()
	default:
		return nil
	}
}

// visit counts c as expanded, logs it and runs the OnVisit hook.
func (r *runner) visit(c *core.City) error {
	r.expanded++
	r.opts.Logger.Debug("search: visit", "strategy", r.name, "city", c.Name(), "expanded", r.expanded)
	if r.opts.OnVisit != nil {
		if err := r.opts.OnVisit(c); err != nil {
			return fmt.Errorf("search: OnVisit hook for %q: %w", c.Name(), err)
		}
	}
	return nil
}

// neighbors returns the cities adjacent to c in random order.
func (r *runner) neighbors(c *core.City) ([]*core.City, error) {
	nbs, err := r.g.AdjacentCities(c)
	if err != nil {
		return nil, fmt.Errorf("search: neighbors of %q: %w", c.Name(), err)
	}
	shuffleCities(nbs, r.opts.Rand)
	return nbs, nil
}

// found builds the success Result, resolving the path distance against the graph.
func (r *runner) found(path core.Path) (*Result, error) {
	d, err := r.g.PathDistance(r.start, path)
	if err != nil {
		return nil, err
	}
	r.opts.Logger.Debug("search: goal reached", "strategy", r.name, "hops", len(path), "km", d)
	return &Result{Path: path, Found: true, Distance: d, Expanded: r.expanded}, nil
}

// notFound builds the failure Result.
func (r *runner) notFound() *Result {
	r.opts.Logger.Debug("search: no route", "strategy", r.name, "expanded", r.expanded)
	return &Result{Found: false, Expanded: r.expanded}
}
