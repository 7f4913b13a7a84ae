// Package search defines the Strategy contract, its functional options and
// sentinel errors, shared by the five route-finding strategies.
package search

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/roadtrip/core"
)

// Sentinel errors for search execution. "No route" is not an error: it is a
// Result with Found == false.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrNilCity is returned when start or goal is nil.
	ErrNilCity = errors.New("search: start or goal is nil")

	// ErrCityNotFound is returned when start or goal is not in the graph.
	ErrCityNotFound = errors.New("search: city not in graph")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrStepLimit is returned when a bounded RandomWalk runs out of steps.
	ErrStepLimit = errors.New("search: step limit exceeded")

	// ErrUnknownStrategy is returned by ByName for an unregistered name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Strategy finds a route from start to goal in g.
//
// All strategies share this signature so a driver can iterate over them.
// A nil error with Found == false means the strategy gave up without a route.
type Strategy interface {
	Name() string
	Run(ctx context.Context, g *core.Graph, start, goal *core.City, opts ...Option) (*Result, error)
}

// Result is the outcome of one strategy run.
//
//   - Path: cities after start through goal (empty when start == goal).
//   - Found: whether Path reaches goal.
//   - Distance: summed road distance of Path with start prepended.
//   - Expanded: number of visits made; RandomWalk counts revisits too.
type Result struct {
	Path     core.Path
	Found    bool
	Distance float64
	Expanded int
}

// Option configures a strategy run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Run.
type Option func(*Options)

// Options holds the parameters of a strategy run.
type Options struct {
	// Rand drives every random choice. Defaults to a time-seeded source.
	Rand Source

	// MaxSteps bounds RandomWalk. 0 means unbounded.
	MaxSteps int

	// MaxDepth bounds RandomDFS recursion (hops from start). -1 means unbounded.
	MaxDepth int

	// OnVisit is called each time a city is visited. A non-nil error aborts the run.
	OnVisit func(c *core.City) error

	// Logger receives debug events. Defaults to a discarding logger.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns Options with a time-seeded source, no step or depth
// limit, no hook and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Rand:     newTimeSeeded(),
		MaxSteps: 0,
		MaxDepth: -1,
		OnVisit:  nil,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithRand injects the random source. A nil src is ignored.
func WithRand(src Source) Option {
	return func(o *Options) {
		if src != nil {
			o.Rand = src
		}
	}
}

// WithSeed uses a deterministic source seeded with seed (0 selects a fixed default).
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rngFromSeed(seed)
	}
}

// WithMaxSteps bounds RandomWalk to n moves.
//
//	n > 0:  stop with ErrStepLimit after n moves
//	n == 0: no limit
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithMaxDepth bounds RandomDFS to paths of at most d hops (d >= 0).
// A negative d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a hook run on every visited city.
func WithOnVisit(fn func(c *core.City) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithLogger routes debug events to l. A nil l is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
