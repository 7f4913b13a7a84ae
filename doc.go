// Package roadtrip finds routes between European cities with five search
// policies over one shared road graph.
//
// What is inside?
//
//	geo/      — great-circle distance between two coordinates
//	core/     — City, Road, Graph (lazy, sealed adjacency), Path and Itinerary
//	europe/   — the fixed 17-city / 21-road dataset
//	frontier/ — generic min-priority frontier
//	search/   — RandomWalk, RandomDFS, RandomBFS, UniformCost, AStar
//	internal/ — config (.env + environment), slog logging, reports, HTTP server
//	cmd/      — roadtrip (console) and roadtrip-server (HTTP) drivers
//
// Quick ASCII example:
//
//	    Rome───Torino───Lyon───Paris
//	      \      |
//	       \─── Milan──Zurich
//
// Every strategy shares one signature:
//
//	res, err := search.AStar{}.Run(ctx, g, europe.Rome, europe.Berlin,
//	    search.WithSeed(42))
//
// Only UniformCost and AStar guarantee a shortest route; RandomBFS guarantees
// the fewest hops; RandomDFS and RandomWalk guarantee neither.
//
// Install:
//
//	go get github.com/katalvlaran/roadtrip
package roadtrip
