// Package core defines the City, Road, and Graph types of the road network,
// and the sentinel errors returned while building and querying it.
//
// Errors:
//
//	ErrNilCity        - a city pointer is nil.
//	ErrInvalidRoad    - a road would connect a city to itself or have zero length.
//	ErrDuplicateRoad  - a second road between the same pair of cities.
//	ErrRoadNotFound   - no road connects the requested pair.
//	ErrCityNotFound   - the city is not part of the graph.
//	ErrCityNotOnRoad  - the city is not an endpoint of the road.
//	ErrGraphSealed    - a mutation after the graph was first queried.
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadtrip/geo"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilCity indicates a nil *City was passed where a city is required.
	ErrNilCity = errors.New("core: city is nil")

	// ErrInvalidRoad indicates a road from a city to itself or of zero length.
	ErrInvalidRoad = errors.New("core: road must connect two distinct cities")

	// ErrDuplicateRoad indicates a second road between an already connected pair.
	ErrDuplicateRoad = errors.New("core: road already exists")

	// ErrRoadNotFound indicates that no road connects the two cities.
	ErrRoadNotFound = errors.New("core: road not found")

	// ErrCityNotFound indicates the city is not part of the graph.
	ErrCityNotFound = errors.New("core: city not found")

	// ErrCityNotOnRoad indicates the city is neither endpoint of the road.
	ErrCityNotOnRoad = errors.New("core: city is not on road")

	// ErrGraphSealed indicates a mutation after the graph started serving queries.
	ErrGraphSealed = errors.New("core: graph is sealed")
)

// City is a named point on the map.
//
// Cities are compared by pointer identity: two City values with equal fields
// are still different nodes. A City is never mutated after NewCity.
type City struct {
	name string
	lat  float64
	lng  float64
}

// NewCity returns a City at the given latitude and longitude (degrees).
func NewCity(name string, lat, lng float64) *City {
	return &City{name: name, lat: lat, lng: lng}
}

// Name returns the city name.
func (c *City) Name() string { return c.name }

// Lat returns the latitude in degrees.
func (c *City) Lat() float64 { return c.lat }

// Lng returns the longitude in degrees.
func (c *City) Lng() float64 { return c.lng }

// String implements fmt.Stringer.
func (c *City) String() string {
	if c == nil {
		return "<nil>"
	}
	return c.name
}

// KilometersTo returns the estimated great-circle distance to other.
func (c *City) KilometersTo(other *City) float64 {
	return geo.Between(c, other)
}

// Road is an undirected edge between two distinct cities.
//
// Distance is computed once by NewRoad and never changes.
type Road struct {
	a        *City
	b        *City
	distance float64
}

// NewRoad builds the road between a and b.
//
// Returns ErrNilCity if either endpoint is nil and ErrInvalidRoad if a == b or
// the two cities share coordinates, so every road has a positive distance.
// Complexity: O(1).
func NewRoad(a, b *City) (*Road, error) {
	if a == nil || b == nil {
		return nil, ErrNilCity
	}
	if a == b {
		return nil, ErrInvalidRoad
	}
	d := a.KilometersTo(b)
	if d <= 0 {
		return nil, fmt.Errorf("%w: %v and %v share coordinates", ErrInvalidRoad, a, b)
	}

	return &Road{a: a, b: b, distance: d}, nil
}

// A returns the first endpoint as stored.
func (r *Road) A() *City { return r.a }

// B returns the second endpoint as stored.
func (r *Road) B() *City { return r.b }

// Distance returns the road length in kilometers.
func (r *Road) Distance() float64 { return r.distance }

// Connects reports whether the road joins x and y, in either orientation.
func (r *Road) Connects(x, y *City) bool {
	return (r.a == x && r.b == y) || (r.a == y && r.b == x)
}

// Opposite returns the endpoint that is not c.
// Returns ErrCityNotOnRoad if c is not an endpoint.
func (r *Road) Opposite(c *City) (*City, error) {
	switch c {
	case r.a:
		return r.b, nil
	case r.b:
		return r.a, nil
	default:
		return nil, ErrCityNotOnRoad
	}
}

// String implements fmt.Stringer, e.g. "Rome | Milan (478 km)".
func (r *Road) String() string {
	return r.a.String() + " | " + r.b.String() + " (" + formatKm(r.distance) + ")"
}
