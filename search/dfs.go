package search

import (
	"context"

	"github.com/katalvlaran/roadtrip/core"
)

// RandomDFS is a backtracking depth-first search over neighbours in random
// order. The first branch that reaches the goal wins.
//
// One visited set is shared by the whole run and is never cleared when a
// branch is abandoned. Without a depth bound this is plain DFS reachability
// and finds a route whenever one exists. With WithMaxDepth, a city first met
// too deep in a failed branch stays excluded from shorter branches found
// later, so the search can fail although a route within the bound exists.
//
// Visited is checked right before each recursive call, not once when the
// neighbour list is built, so a city reached by an earlier sibling is skipped.
type RandomDFS struct{}

// Name implements Strategy.
func (RandomDFS) Name() string { return "random-dfs" }

// Run implements Strategy.
func (s RandomDFS) Run(ctx context.Context, g *core.Graph, start, goal *core.City, opts ...Option) (*Result, error) {
	r, err := newRunner(ctx, s.Name(), g, start, goal, opts)
	if err != nil {
		return nil, err
	}

	path, ok, err := r.traverse(node{city: start, path: core.Path{}}, 0)
	if err != nil {
		return nil, err
	}
	if !ok {
		return r.notFound(), nil
	}

	return r.found(path)
}

// traverse enters n at the given depth and recurses into unvisited neighbours.
// ok reports whether the goal was reached below n.
func (r *runner) traverse(n node, depth int) (path core.Path, ok bool, err error) {
	// 1. Cancellation check
	if err = r.canceled(); err != nil {
		return nil, false, err
	}

	// 2. Depth limit: too deep to enter, leave unmarked
	if r.opts.MaxDepth >= 0 && depth > r.opts.MaxDepth {
		return nil, false, nil
	}

	// 3. Mark visited for the rest of the run
	r.visited[n.city] = true
	if err = r.visit(n.city); err != nil {
		return nil, false, err
	}
	if n.city == r.goal {
		return n.path, true, nil
	}

	// 4. Explore neighbours in random order
	nbs, err := r.neighbors(n.city)
	if err != nil {
		return nil, false, err
	}
	for _, next := range nbs {
		// A sibling branch may have marked next since nbs was taken.
		if r.visited[next] {
			continue
		}
		road, err := r.g.Between(n.city, next)
		if err != nil {
			return nil, false, err
		}
		if path, ok, err = r.traverse(n.extend(next, road), depth+1); err != nil || ok {
			return path, ok, err
		}
	}

	return nil, false, nil
}
