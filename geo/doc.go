// Package geo estimates great-circle distances between geographic coordinates.
//
// The estimate uses the spherical law of cosines over an assumed Earth radius.
// The same function weights every core.Road and drives the A* heuristic in
// package search, so both sides of the admissibility argument share one set
// of constants.
//
// Complexity:
//
//   - Time:  O(1)
//   - Space: O(1)
//
// Usage:
//
//	km := geo.DistanceKm(41.9, 12.5, 52.5, 13.4) // Rome → Berlin
package geo
