package search

import (
	"context"

	"github.com/katalvlaran/roadtrip/core"
	"github.com/katalvlaran/roadtrip/frontier"
)

// Heuristic estimates the remaining distance from c to goal, in kilometers.
type Heuristic func(c, goal *core.City) float64

// GeoHeuristic is the straight-line estimate used by AStar by default.
// It is admissible as long as no road is shorter than the geodesic it spans,
// which holds for roads weighted by the same geo.DistanceKm.
func GeoHeuristic(c, goal *core.City) float64 {
	return c.KilometersTo(goal)
}

// UniformCost expands the frontier node with the smallest cumulative road
// distance from start (Dijkstra with lazy deletion). The first time the goal
// is extracted its path is a cheapest one.
type UniformCost struct{}

// Name implements Strategy.
func (UniformCost) Name() string { return "uniform-cost" }

// Run implements Strategy.
func (s UniformCost) Run(ctx context.Context, g *core.Graph, start, goal *core.City, opts ...Option) (*Result, error) {
	r, err := newRunner(ctx, s.Name(), g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	return r.bestFirst(func(n node) float64 { return n.cost })
}

// AStar is UniformCost with the frontier keyed by cumulative distance plus
// Heuristic(city, goal). A nil Heuristic means GeoHeuristic.
type AStar struct {
	Heuristic Heuristic
}

// Name implements Strategy.
func (AStar) Name() string { return "astar" }

// Run implements Strategy.
func (s AStar) Run(ctx context.Context, g *core.Graph, start, goal *core.City, opts ...Option) (*Result, error) {
	r, err := newRunner(ctx, s.Name(), g, start, goal, opts)
	if err != nil {
		return nil, err
	}
	h := s.Heuristic
	if h == nil {
		h = GeoHeuristic
	}
	return r.bestFirst(func(n node) float64 { return n.cost + h(n.city, goal) })
}

// bestFirst runs the shared extract-min loop ordered by key.
//
// Nodes are marked visited at extraction; stale copies of already visited
// cities are skipped when popped. Neighbours are inserted in random order, so
// ties between equal keys resolve differently from run to run.
func (r *runner) bestFirst(key func(node) float64) (*Result, error) {
	f := frontier.New(key)
	f.Insert(node{city: r.start, path: core.Path{}})

	for !f.IsEmpty() {
		if err := r.canceled(); err != nil {
			return nil, err
		}

		n, _ := f.ExtractMin()
		if r.visited[n.city] {
			continue
		}
		r.visited[n.city] = true
		if err := r.visit(n.city); err != nil {
			return nil, err
		}
		if n.city == r.goal {
			return r.found(n.path)
		}

		nbs, err := r.neighbors(n.city)
		if err != nil {
			return nil, err
		}
		for _, next := range nbs {
			if r.visited[next] {
				continue
			}
			road, err := r.g.Between(n.city, next)
			if err != nil {
				return nil, err
			}
			f.Insert(n.extend(next, road))
		}
	}

	return r.notFound(), nil
}
