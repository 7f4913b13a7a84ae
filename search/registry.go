package search

import (
	"fmt"
	"strings"
)

// All returns the five strategies in presentation order: random walk,
// random DFS, random BFS, uniform cost, A*.
func All() []Strategy {
	return []Strategy{
		RandomWalk{},
		RandomDFS{},
		RandomBFS{},
		UniformCost{},
		AStar{},
	}
}

// Names returns the names of All, in order.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name()
	}
	return names
}

// ByName resolves a strategy by case-insensitive name.
func ByName(name string) (Strategy, error) {
	for _, s := range All() {
		if strings.EqualFold(s.Name(), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStrategy, name, strings.Join(Names(), ", "))
}
