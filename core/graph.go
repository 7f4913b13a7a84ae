package core

import (
	"fmt"
	"strings"
	"sync"
)

// Graph is the road network: a set of cities and the roads between them.
//
// A Graph is assembled with AddCity and AddRoad (or Build) and then only read.
// The first adjacency query seals it; later mutations fail with ErrGraphSealed.
// Adjacency is derived from the road list lazily and cached per city, which is
// safe because the network no longer changes once sealed.
//
// mu guards cities, roads and sealed; muAdj guards the adjacency cache.
type Graph struct {
	mu    sync.RWMutex
	muAdj sync.RWMutex

	sealed bool
	cities []*City            // insertion order
	index  map[*City]struct{} // membership
	roads  []*Road            // insertion order

	adjacent map[*City][]*City // lazily filled cache
}

// NewGraph returns an empty, unsealed Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		index:    make(map[*City]struct{}),
		adjacent: make(map[*City][]*City),
	}
}

// Build constructs a sealed Graph holding cities and one road per pair.
//
// Cities referenced only by a pair are added automatically.
// The first construction error aborts the build and is returned wrapped with
// the offending pair.
// Complexity: O(C + R²) for C cities and R roads; the duplicate check is linear.
func Build(cities []*City, pairs [][2]*City) (*Graph, error) {
	g := NewGraph()
	for _, c := range cities {
		if err := g.AddCity(c); err != nil {
			return nil, err
		}
	}
	for _, p := range pairs {
		if _, err := g.AddRoad(p[0], p[1]); err != nil {
			return nil, fmt.Errorf("core: road %v-%v: %w", p[0], p[1], err)
		}
	}
	g.seal()

	return g, nil
}

// AddCity registers c. Adding the same city twice is a no-op.
//
// Errors: ErrNilCity, ErrGraphSealed.
func (g *Graph) AddCity(c *City) error {
	if c == nil {
		return ErrNilCity
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sealed {
		return ErrGraphSealed
	}
	g.addCityLocked(c)

	return nil
}

func (g *Graph) addCityLocked(c *City) {
	if _, ok := g.index[c]; ok {
		return
	}
	g.index[c] = struct{}{}
	g.cities = append(g.cities, c)
}

// AddRoad builds the road between a and b and adds it, registering both
// endpoints if needed.
//
// Errors: ErrNilCity, ErrInvalidRoad (a == b), ErrDuplicateRoad, ErrGraphSealed.
// Complexity: O(R) for the duplicate scan.
func (g *Graph) AddRoad(a, b *City) (*Road, error) {
	r, err := NewRoad(a, b)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.sealed {
		return nil, ErrGraphSealed
	}
	for _, existing := range g.roads {
		if existing.Connects(a, b) {
			return nil, ErrDuplicateRoad
		}
	}
	g.addCityLocked(a)
	g.addCityLocked(b)
	g.roads = append(g.roads, r)

	return r, nil
}

// seal freezes the graph against further mutation.
func (g *Graph) seal() {
	g.mu.Lock()
	g.sealed = true
	g.mu.Unlock()
}

// HasCity reports whether c belongs to the graph.
func (g *Graph) HasCity(c *City) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.index[c]

	return ok
}

// Cities returns the cities in insertion order. The slice is a copy.
func (g *Graph) Cities() []*City {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*City, len(g.cities))
	copy(out, g.cities)

	return out
}

// Roads returns the roads in insertion order. The slice is a copy.
func (g *Graph) Roads() []*Road {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Road, len(g.roads))
	copy(out, g.roads)

	return out
}

// CityByName finds a city by case-insensitive name.
// Returns ErrCityNotFound if none matches.
func (g *Graph) CityByName(name string) (*City, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, c := range g.cities {
		if strings.EqualFold(c.name, name) {
			return c, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrCityNotFound, name)
}

// Between returns the road joining a and b, whichever way it was stored.
//
// Errors: ErrNilCity, or ErrRoadNotFound wrapped with both city names.
// Complexity: O(R).
func (g *Graph) Between(a, b *City) (*Road, error) {
	if a == nil || b == nil {
		return nil, ErrNilCity
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, r := range g.roads {
		if r.Connects(a, b) {
			return r, nil
		}
	}

	return nil, fmt.Errorf("%w: between %v and %v", ErrRoadNotFound, a, b)
}

// AdjacentCities returns the cities one road away from c.
//
// The first call for a city scans the road list and caches the result; it also
// seals the graph. The order follows road insertion but is not part of the
// contract. The returned slice is a copy and may be shuffled by the caller.
//
// Errors: ErrNilCity, ErrCityNotFound.
// Complexity: O(R) on the first call per city, O(d) afterwards.
func (g *Graph) AdjacentCities(c *City) ([]*City, error) {
	if c == nil {
		return nil, ErrNilCity
	}
	if !g.HasCity(c) {
		return nil, fmt.Errorf("%w: %v", ErrCityNotFound, c)
	}

	g.muAdj.RLock()
	cached, ok := g.adjacent[c]
	g.muAdj.RUnlock()
	if !ok {
		cached = g.fillAdjacent(c)
	}

	out := make([]*City, len(cached))
	copy(out, cached)

	return out, nil
}

// fillAdjacent computes and stores the adjacency of c.
func (g *Graph) fillAdjacent(c *City) []*City {
	g.seal()

	g.mu.RLock()
	var list []*City
	for _, r := range g.roads {
		if other, err := r.Opposite(c); err == nil {
			list = append(list, other)
		}
	}
	g.mu.RUnlock()

	g.muAdj.Lock()
	defer g.muAdj.Unlock()
	if existing, ok := g.adjacent[c]; ok {
		return existing
	}
	g.adjacent[c] = list

	return list
}
