package search

import (
	"context"

	"github.com/katalvlaran/roadtrip/core"
)

// RandomBFS is breadth-first search with neighbours enqueued in random order.
//
// Cities are marked visited when dequeued, not when enqueued, so a city may
// sit in the queue more than once; later copies are skipped. Because the queue
// is processed layer by layer, the returned path has the fewest possible hops.
type RandomBFS struct{}

// Name implements Strategy.
func (RandomBFS) Name() string { return "random-bfs" }

// Run implements Strategy.
func (s RandomBFS) Run(ctx context.Context, g *core.Graph, start, goal *core.City, opts ...Option) (*Result, error) {
	r, err := newRunner(ctx, s.Name(), g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	queue := []node{{city: start, path: core.Path{}}}
	for len(queue) > 0 {
		if err = r.canceled(); err != nil {
			return nil, err
		}

		n := queue[0]
		queue = queue[1:]
		if r.visited[n.city] {
			continue
		}
		r.visited[n.city] = true
		if err = r.visit(n.city); err != nil {
			return nil, err
		}
		if n.city == goal {
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
			queue = append(queue, n.extend(next, road))
		}
	}

	return r.notFound(), nil
}
