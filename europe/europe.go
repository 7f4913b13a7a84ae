package europe

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/roadtrip/core"
)

// Cities of the network, latitude and longitude in degrees.
var (
	Berlin    = core.NewCity("Berlin", 52.482668, 13.359275)
	Paris     = core.NewCity("Paris", 48.980405, 2.2851849)
	Milan     = core.NewCity("Milan", 45.520543, 9.1419459)
	Frankfurt = core.NewCity("Frankfurt", 50.078848, 8.6349115)
	Verona    = core.NewCity("Verona", 45.383429, 10.982257)
	Munich    = core.NewCity("Munich", 48.166229, 11.558089)
	Zurich    = core.NewCity("Zurich", 47.383444, 8.5254142)
	Tours     = core.NewCity("Tours", 47.413572, 0.6810506)
	Lyon      = core.NewCity("Lyon", 45.767122, 4.8339568)
	Vienna    = core.NewCity("Vienna", 48.224431, 16.389240)
	Prague    = core.NewCity("Prague", 50.092396, 14.436144)
	Krakow    = core.NewCity("Krakow", 50.050363, 19.928578)
	Warsaw    = core.NewCity("Warsaw", 52.254756, 21.005968)
	Hamburg   = core.NewCity("Hamburg", 53.539699, 9.9977143)
	Antwerp   = core.NewCity("Antwerp", 51.220613, 4.3954882)
	Torino    = core.NewCity("Torino", 45.105321, 7.6451957)
	Rome      = core.NewCity("Rome", 42.032845, 12.390408)
)

// Default endpoints of the demonstration trip.
var (
	DefaultStart = Rome
	DefaultGoal  = Berlin
)

var cities = []*core.City{
	Berlin, Paris, Milan, Frankfurt, Verona, Munich, Zurich, Tours, Lyon,
	Vienna, Prague, Krakow, Warsaw, Hamburg, Antwerp, Torino, Rome,
}

var roadPairs = [][2]*core.City{
	{Hamburg, Berlin},
	{Hamburg, Antwerp},
	{Hamburg, Frankfurt},
	{Berlin, Warsaw},
	{Berlin, Prague},
	{Antwerp, Paris},
	{Paris, Tours},
	{Paris, Lyon},
	{Paris, Zurich},
	{Paris, Frankfurt},
	{Frankfurt, Prague},
	{Krakow, Warsaw},
	{Krakow, Prague},
	{Krakow, Vienna},
	{Vienna, Munich},
	{Vienna, Prague},
	{Zurich, Milan},
	{Lyon, Torino},
	{Torino, Milan},
	{Torino, Rome},
	{Milan, Rome},
}

// LoadCities returns every city of the network. The slice is fresh; the
// cities are shared.
func LoadCities() []*core.City {
	out := make([]*core.City, len(cities))
	copy(out, cities)
	return out
}

// LoadRoadPairs returns the city pairs that have a road between them.
func LoadRoadPairs() [][2]*core.City {
	out := make([][2]*core.City, len(roadPairs))
	copy(out, roadPairs)
	return out
}

// Graph builds a new sealed graph over LoadCities and LoadRoadPairs.
func Graph() (*core.Graph, error) {
	g, err := core.Build(LoadCities(), LoadRoadPairs())
	if err != nil {
		return nil, fmt.Errorf("europe: %w", err)
	}
	return g, nil
}

// Lookup finds a city by case-insensitive name.
func Lookup(name string) (*core.City, error) {
	name = strings.TrimSpace(name)
	for _, c := range cities {
		if strings.EqualFold(c.Name(), name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("europe: %w: %q", core.ErrCityNotFound, name)
}
