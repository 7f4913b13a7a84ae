package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/roadtrip/core"
)

type GraphSuite struct {
	suite.Suite
	g          *core.Graph
	a, b, c, d *core.City
}

func (s *GraphSuite) SetupTest() {
	// 4-city chain A–B–C–D at one-degree spacing on the equator.
	s.a = core.NewCity("A", 0, 0)
	s.b = core.NewCity("B", 0, 1)
	s.c = core.NewCity("C", 0, 2)
	s.d = core.NewCity("D", 0, 3)
	s.g = core.NewGraph()
	require := require.New(s.T())
	_, err := s.g.AddRoad(s.a, s.b)
	require.NoError(err)
	_, err = s.g.AddRoad(s.b, s.c)
	require.NoError(err)
	_, err = s.g.AddRoad(s.c, s.d)
	require.NoError(err)
}

func (s *GraphSuite) TestAddRoadRegistersCities() {
	require := require.New(s.T())
	require.True(s.g.HasCity(s.a))
	require.True(s.g.HasCity(s.d))
	require.Equal([]*core.City{s.a, s.b, s.c, s.d}, s.g.Cities())
	require.Len(s.g.Roads(), 3)
}

func (s *GraphSuite) TestAddCityIdempotent() {
	require := require.New(s.T())
	require.NoError(s.g.AddCity(s.a))
	require.Len(s.g.Cities(), 4)
	require.ErrorIs(s.g.AddCity(nil), core.ErrNilCity)
}

func (s *GraphSuite) TestDuplicateRoadRejected() {
	require := require.New(s.T())
	_, err := s.g.AddRoad(s.b, s.a)
	require.ErrorIs(err, core.ErrDuplicateRoad)
	require.Len(s.g.Roads(), 3)
}

func (s *GraphSuite) TestSelfLoopRejected() {
	_, err := s.g.AddRoad(s.c, s.c)
	require.ErrorIs(s.T(), err, core.ErrInvalidRoad)
}

func (s *GraphSuite) TestBetweenBothOrientations() {
	require := require.New(s.T())
	ab, err := s.g.Between(s.a, s.b)
	require.NoError(err)
	ba, err := s.g.Between(s.b, s.a)
	require.NoError(err)
	require.Same(ab, ba)
	require.Equal(s.a.KilometersTo(s.b), ab.Distance())
}

func (s *GraphSuite) TestBetweenMissing() {
	require := require.New(s.T())
	_, err := s.g.Between(s.a, s.d)
	require.ErrorIs(err, core.ErrRoadNotFound)
	require.Contains(err.Error(), "A")
	require.Contains(err.Error(), "D")

	_, err = s.g.Between(nil, s.d)
	require.ErrorIs(err, core.ErrNilCity)
}

func (s *GraphSuite) TestAdjacentCities() {
	require := require.New(s.T())
	nbs, err := s.g.AdjacentCities(s.b)
	require.NoError(err)
	require.ElementsMatch([]*core.City{s.a, s.c}, nbs)

	nbs, err = s.g.AdjacentCities(s.a)
	require.NoError(err)
	require.Equal([]*core.City{s.b}, nbs)
}

func (s *GraphSuite) TestAdjacentCitiesReturnsCopy() {
	require := require.New(s.T())
	nbs, err := s.g.AdjacentCities(s.b)
	require.NoError(err)
	nbs[0], nbs[1] = nil, nil

	again, err := s.g.AdjacentCities(s.b)
	require.NoError(err)
	require.ElementsMatch([]*core.City{s.a, s.c}, again)
}

func (s *GraphSuite) TestAdjacentCitiesUnknownCity() {
	require := require.New(s.T())
	_, err := s.g.AdjacentCities(core.NewCity("X", 9, 9))
	require.ErrorIs(err, core.ErrCityNotFound)
	_, err = s.g.AdjacentCities(nil)
	require.ErrorIs(err, core.ErrNilCity)
}

func (s *GraphSuite) TestIsolatedCityHasNoNeighbors() {
	require := require.New(s.T())
	lonely := core.NewCity("Lonely", 10, 10)
	require.NoError(s.g.AddCity(lonely))
	nbs, err := s.g.AdjacentCities(lonely)
	require.NoError(err)
	require.Empty(nbs)
}

func (s *GraphSuite) TestSealedAfterFirstQuery() {
	require := require.New(s.T())
	_, err := s.g.AdjacentCities(s.a)
	require.NoError(err)

	_, err = s.g.AddRoad(s.a, s.d)
	require.ErrorIs(err, core.ErrGraphSealed)
	require.ErrorIs(s.g.AddCity(core.NewCity("E", 0, 4)), core.ErrGraphSealed)
}

func (s *GraphSuite) TestCityByName() {
	require := require.New(s.T())
	c, err := s.g.CityByName("c")
	require.NoError(err)
	require.Same(s.c, c)

	_, err = s.g.CityByName("Z")
	require.ErrorIs(err, core.ErrCityNotFound)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func TestBuild(t *testing.T) {
	a := core.NewCity("A", 0, 0)
	b := core.NewCity("B", 0, 1)
	c := core.NewCity("C", 0, 2)
	lonely := core.NewCity("Lonely", 5, 5)

	g, err := core.Build([]*core.City{a, b, c, lonely}, [][2]*core.City{{a, b}, {b, c}})
	require.NoError(t, err)
	require.Len(t, g.Cities(), 4)
	require.Len(t, g.Roads(), 2)

	// Build returns a sealed graph.
	_, err = g.AddRoad(a, c)
	require.ErrorIs(t, err, core.ErrGraphSealed)
}

func TestBuild_AbortsOnSelfLoop(t *testing.T) {
	a := core.NewCity("A", 0, 0)
	g, err := core.Build(nil, [][2]*core.City{{a, a}})
	require.Nil(t, g)
	require.ErrorIs(t, err, core.ErrInvalidRoad)
}

func TestBuild_AbortsOnNilCity(t *testing.T) {
	g, err := core.Build([]*core.City{nil}, nil)
	require.Nil(t, g)
	require.ErrorIs(t, err, core.ErrNilCity)
}
