// Package report turns search results into printable trips.
package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/roadtrip/core"
	"github.com/katalvlaran/roadtrip/search"
)

// Trip is the driver-facing view of one strategy run.
type Trip struct {
	Strategy string  `json:"strategy"`
	From     string  `json:"from"`
	To       string  `json:"to"`
	Found    bool    `json:"found"`
	Steps    int     `json:"steps"`
	Legs     []Leg   `json:"legs"`
	TotalKm  float64 `json:"total_km"`
	Expanded int     `json:"expanded"`
}

// Leg is one hop of a Trip.
type Leg struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Km   float64 `json:"km"`
}

// New resolves res against g. A result that claims a route whose hops are not
// all roads yields core.ErrRoadNotFound.
func New(g *core.Graph, strategy string, start, goal *core.City, res *search.Result) (*Trip, error) {
	t := &Trip{
		Strategy: strategy,
		From:     start.Name(),
		To:       goal.Name(),
		Found:    res.Found,
		Legs:     []Leg{},
		Expanded: res.Expanded,
	}
	if !res.Found {
		return t, nil
	}

	it, err := g.Itinerary(start, res.Path)
	if err != nil {
		return nil, fmt.Errorf("report: %s: %w", strategy, err)
	}
	for _, l := range it.Legs {
		t.Legs = append(t.Legs, Leg{From: l.From.Name(), To: l.To.Name(), Km: l.Distance})
	}
	t.Steps = it.Steps()
	t.TotalKm = it.Total

	return t, nil
}

// WriteText prints t in the console layout:
//
//	uniform-cost
//	Rome -> Torino (512 km)
//	...
//	arrived in 6 steps (2152 km)
func WriteText(w io.Writer, t *Trip) error {
	if _, err := fmt.Fprintln(w, t.Strategy); err != nil {
		return err
	}
	if !t.Found {
		_, err := fmt.Fprintf(w, "no route from %s to %s (%d visits)\n\n", t.From, t.To, t.Expanded)
		return err
	}
	for _, l := range t.Legs {
		if _, err := fmt.Fprintf(w, "%s -> %s (%.0f km)\n", l.From, l.To, l.Km); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "arrived in %d steps (%.0f km)\n\n", t.Steps, t.TotalKm)
	return err
}
