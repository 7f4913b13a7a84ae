// Package europe is the fixed road network of seventeen European cities.
//
// Cities are package-level *core.City values created once; roads are listed as
// city pairs and turned into a *core.Graph by Graph. Verona is part of the city
// list but has no roads, so every search towards it reports failure.
//
// Usage:
//
//	g, err := europe.Graph()
//	res, err := search.AStar{}.Run(ctx, g, europe.Rome, europe.Berlin)
package europe
