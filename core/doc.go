// Package core models the road network searched by package search.
//
// The model G = (V, E) is deliberately small:
//
//   - City: a named point (latitude, longitude in degrees), identified by pointer.
//   - Road: an undirected edge between two distinct cities. Its Distance is the
//     geo.DistanceKm estimate between the endpoints, computed once.
//   - Graph: the list of roads plus the cities they touch. Adjacency is derived
//     from the roads on demand and cached per city.
//   - Path / Itinerary: a search result and its per-leg distances.
//
// Lifecycle:
//
//	g := core.NewGraph()
//	g.AddRoad(rome, milan)           // auto-adds both cities
//	g.AddRoad(milan, zurich)
//	nbs, _ := g.AdjacentCities(milan) // first read seals the graph
//	_, err := g.AddRoad(rome, zurich) // err == ErrGraphSealed
//
// Build(cities, pairs) does the same in one call and returns a sealed graph.
//
// Invariants:
//
//   - A road never joins a city to itself (ErrInvalidRoad).
//   - At most one road joins a pair of cities (ErrDuplicateRoad), so Between is unique.
//   - Road.Distance() > 0; NewRoad rejects endpoints that share coordinates.
//
// Concurrency:
//
//	All Graph methods are safe for concurrent use. mu guards the city and road
//	lists; muAdj guards the adjacency cache.
//
// Complexity:
//
//   - Between:        O(R)
//   - AdjacentCities: O(R) first call per city, then O(d)
//   - Itinerary:      O(len(path) · R)
package core
