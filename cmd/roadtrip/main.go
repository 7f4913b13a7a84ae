// Command roadtrip runs the search strategies over the European road map and
// prints each itinerary.
//
// Usage:
//
//	roadtrip [-from Rome] [-to Berlin] [-strategy all] [-seed 0] [-max-steps 100000]
//
// Defaults come from the environment (and a .env file when present).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/katalvlaran/roadtrip/europe"
	"github.com/katalvlaran/roadtrip/internal/config"
	"github.com/katalvlaran/roadtrip/internal/logging"
	"github.com/katalvlaran/roadtrip/internal/report"
	"github.com/katalvlaran/roadtrip/search"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "roadtrip:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("roadtrip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Trip.From, "from", cfg.Trip.From, "start city")
	fs.StringVar(&cfg.Trip.To, "to", cfg.Trip.To, "goal city")
	fs.StringVar(&cfg.Trip.Strategy, "strategy", cfg.Trip.Strategy,
		"strategy to run: all, "+strings.Join(search.Names(), ", "))
	fs.Int64Var(&cfg.Trip.Seed, "seed", cfg.Trip.Seed, "random seed (0 = time-seeded)")
	fs.IntVar(&cfg.Trip.MaxSteps, "max-steps", cfg.Trip.MaxSteps, "step limit for the random walk")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.Trip.MaxSteps <= 0 {
		return fmt.Errorf("-max-steps must be positive, got %d", cfg.Trip.MaxSteps)
	}

	logger := logging.New(stderr, cfg.Logging)

	g, err := europe.Graph()
	if err != nil {
		return err
	}
	from, err := europe.Lookup(cfg.Trip.From)
	if err != nil {
		return err
	}
	to, err := europe.Lookup(cfg.Trip.To)
	if err != nil {
		return err
	}

	strategies := search.All()
	if !strings.EqualFold(cfg.Trip.Strategy, "all") {
		s, err := search.ByName(cfg.Trip.Strategy)
		if err != nil {
			return err
		}
		strategies = []search.Strategy{s}
	}

	opts := []search.Option{search.WithMaxSteps(cfg.Trip.MaxSteps), search.WithLogger(logger)}
	if cfg.Trip.Seed != 0 {
		opts = append(opts, search.WithSeed(cfg.Trip.Seed))
	}

	for _, s := range strategies {
		res, err := s.Run(ctx, g, from, to, opts...)
		if errors.Is(err, search.ErrStepLimit) {
			logger.Warn("gave up", "strategy", s.Name(), "steps", cfg.Trip.MaxSteps)
			fmt.Fprintf(stdout, "%s\ngave up after %d steps\n\n", s.Name(), cfg.Trip.MaxSteps)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", s.Name(), err)
		}

		trip, err := report.New(g, s.Name(), from, to, res)
		if err != nil {
			return err
		}
		if err := report.WriteText(stdout, trip); err != nil {
			return err
		}
		logger.Debug("strategy finished", slog.String("strategy", s.Name()), slog.Int("expanded", res.Expanded))
	}

	return nil
}
