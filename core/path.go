package core

import (
	"fmt"
	"strings"
)

// Path is the ordered list of cities visited after the start, ending at the goal.
// The start city itself is not part of a Path; an empty Path means start == goal.
type Path []*City

// Last returns the final city of the path, or nil if the path is empty.
func (p Path) Last() *City {
	if len(p) == 0 {
		return nil
	}
	return p[len(p)-1]
}

// Contains reports whether c appears anywhere on the path.
func (p Path) Contains(c *City) bool {
	for _, x := range p {
		if x == c {
			return true
		}
	}
	return false
}

// String renders the path as "A -> B -> C".
func (p Path) String() string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = c.String()
	}
	return strings.Join(names, " -> ")
}

// Leg is one hop of an Itinerary.
type Leg struct {
	From     *City
	To       *City
	Distance float64
}

// Itinerary is a Path resolved against the graph's roads.
type Itinerary struct {
	Start *City
	Legs  []Leg
	Total float64
}

// Steps returns the number of hops.
func (it *Itinerary) Steps() int { return len(it.Legs) }

// Itinerary resolves path (with start prepended) into legs and a total distance.
//
// Every consecutive pair must be joined by a road; otherwise the wrapped
// ErrRoadNotFound is returned together with the index of the broken leg.
// Complexity: O(len(path) · R).
func (g *Graph) Itinerary(start *City, path Path) (*Itinerary, error) {
	if start == nil {
		return nil, ErrNilCity
	}
	it := &Itinerary{Start: start, Legs: make([]Leg, 0, len(path))}
	prev := start
	for i, next := range path {
		r, err := g.Between(prev, next)
		if err != nil {
			return nil, fmt.Errorf("core: leg %d: %w", i, err)
		}
		it.Legs = append(it.Legs, Leg{From: prev, To: next, Distance: r.Distance()})
		it.Total += r.Distance()
		prev = next
	}

	return it, nil
}

// PathDistance returns the summed road distance of path with start prepended.
func (g *Graph) PathDistance(start *City, path Path) (float64, error) {
	it, err := g.Itinerary(start, path)
	if err != nil {
		return 0, err
	}
	return it.Total, nil
}

func formatKm(d float64) string {
	return fmt.Sprintf("%.0f km", d)
}
