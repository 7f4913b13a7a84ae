// Command roadtrip-server serves route queries over HTTP.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/katalvlaran/roadtrip/europe"
	"github.com/katalvlaran/roadtrip/internal/config"
	"github.com/katalvlaran/roadtrip/internal/logging"
	"github.com/katalvlaran/roadtrip/internal/server"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		panic(err)
	}

	logger := logging.New(os.Stdout, cfg.Logging)

	g, err := europe.Graph()
	if err != nil {
		logger.Error("failed to build road graph", "error", err)
		os.Exit(1)
	}

	handlers := server.NewHandlers(logger, g, cfg.Trip.MaxSteps)
	srv := server.New(logger, cfg.HTTP.Addr, server.NewRouter(logger, handlers))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			logger.Error("http server error", "error", err)
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
