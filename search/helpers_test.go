package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadtrip/core"
	"github.com/katalvlaran/roadtrip/search"
)

// fixedOrder never shuffles and always picks the first neighbour, so
// neighbour order follows the graph's road order.
type fixedOrder struct{}

func (fixedOrder) Intn(int) int                { return 0 }
func (fixedOrder) Shuffle(int, func(i, j int)) {}

// buildChain returns the 4-city line A(0,0)–B(0,1)–C(0,2)–D(0,3).
func buildChain(t testing.TB) (*core.Graph, []*core.City) {
	t.Helper()
	cs := []*core.City{
		core.NewCity("A", 0, 0),
		core.NewCity("B", 0, 1),
		core.NewCity("C", 0, 2),
		core.NewCity("D", 0, 3),
	}
	g, err := core.Build(cs, [][2]*core.City{{cs[0], cs[1]}, {cs[1], cs[2]}, {cs[2], cs[3]}})
	require.NoError(t, err)

	return g, cs
}

// allPairs is an independent reference: Floyd–Warshall over g's roads.
func allPairs(g *core.Graph) map[*core.City]map[*core.City]float64 {
	cities := g.Cities()
	dist := make(map[*core.City]map[*core.City]float64, len(cities))
	for _, u := range cities {
		dist[u] = make(map[*core.City]float64, len(cities))
		for _, v := range cities {
			dist[u][v] = math.Inf(1)
		}
		dist[u][u] = 0
	}
	for _, r := range g.Roads() {
		dist[r.A()][r.B()] = r.Distance()
		dist[r.B()][r.A()] = r.Distance()
	}
	for _, k := range cities {
		for _, i := range cities {
			for _, j := range cities {
				if via := dist[i][k] + dist[k][j]; via < dist[i][j] {
					dist[i][j] = via
				}
			}
		}
	}

	return dist
}

// hopCount is the reference fewest-hops distance, -1 when unreachable.
func hopCount(t testing.TB, g *core.Graph, from, to *core.City) int {
	t.Helper()
	depth := map[*core.City]int{from: 0}
	queue := []*core.City{from}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == to {
			return depth[c]
		}
		nbs, err := g.AdjacentCities(c)
		require.NoError(t, err)
		for _, n := range nbs {
			if _, seen := depth[n]; !seen {
				depth[n] = depth[c] + 1
				queue = append(queue, n)
			}
		}
	}

	return -1
}

// requireValidPath checks that res is a found route from start to goal whose
// every hop is a road, and that Distance matches the road sum.
func requireValidPath(t testing.TB, g *core.Graph, start, goal *core.City, res *search.Result) {
	t.Helper()
	require.NotNil(t, res)
	require.True(t, res.Found, "expected a route %v → %v", start, goal)
	if start == goal {
		require.Empty(t, res.Path)
	} else {
		require.Same(t, goal, res.Path.Last())
	}
	it, err := g.Itinerary(start, res.Path)
	require.NoError(t, err)
	require.InDelta(t, it.Total, res.Distance, 1e-9)
}
