// Package search finds routes between two cities of a core.Graph with five
// interchangeable strategies.
//
// What
//
//   - RandomWalk:  uniform random moves until the goal; cycles allowed,
//     no termination guarantee.
//   - RandomDFS:   backtracking depth-first search, random neighbour order,
//     one visited set per run that is never cleared.
//   - RandomBFS:   breadth-first search, random neighbour order; fewest hops.
//   - UniformCost: cheapest-first by cumulative road distance; shortest route.
//   - AStar:       cheapest-first by distance + straight-line estimate; shortest route.
//
// Every strategy implements
//
//	Run(ctx, g, start, goal, opts...) (*Result, error)
//
// and returns Found == false, not an error, when it gives up without a route.
// Errors are reserved for bad input, cancellation, the RandomWalk step limit
// and hook failures.
//
// Randomness
//
//	Neighbour picks and shuffles go through a Source. By default it is seeded
//	from the clock, so repeated runs differ. WithSeed or WithRand make a run
//	reproducible; a Source that never shuffles makes neighbour order follow the
//	graph's road order.
//
// Frontiers
//
//	RandomBFS keeps a FIFO queue. UniformCost and AStar use frontier.Frontier
//	with lazy deletion: a city may be queued many times and only its first
//	extraction counts.
//
// Complexity (V = cities, E = roads)
//
//   - RandomDFS, RandomBFS: O(V + E) visits, plus O(E) road lookups each O(E).
//   - UniformCost, AStar:   O(E log E) frontier work.
//   - RandomWalk:           unbounded.
//
// Usage
//
//	g, _ := europe.Graph()
//	for _, s := range search.All() {
//	    res, err := s.Run(ctx, g, europe.Rome, europe.Berlin,
//	        search.WithSeed(7),
//	        search.WithMaxSteps(10_000),
//	    )
//	    ...
//	}
//
// Options
//
//   - WithRand(src) / WithSeed(seed): random source.
//   - WithMaxSteps(n):                bound RandomWalk.
//   - WithMaxDepth(d):                bound RandomDFS.
//   - WithOnVisit(fn):                hook per visited city; error aborts.
//   - WithLogger(l):                  debug events through log/slog.
//
// Errors
//
//   - ErrGraphNil, ErrNilCity, ErrCityNotFound for invalid input.
//   - ErrOptionViolation for negative MaxSteps or MaxDepth.
//   - ErrStepLimit when RandomWalk exhausts MaxSteps.
//   - context errors on cancellation, wrapped hook errors from OnVisit.
package search
