// Package server exposes the search strategies over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/roadtrip/core"
	"github.com/katalvlaran/roadtrip/internal/report"
	"github.com/katalvlaran/roadtrip/search"
)

// Handlers serves route queries against one graph.
type Handlers struct {
	logger   *slog.Logger
	graph    *core.Graph
	maxSteps int
}

// DefaultMaxSteps bounds the random walk when NewHandlers gets no positive limit.
const DefaultMaxSteps = 100000

// StatusClientClosedRequest is reported when the client goes away mid-search.
const StatusClientClosedRequest = 499

// NewHandlers constructs Handlers. maxSteps bounds the random walk; values
// <= 0 fall back to DefaultMaxSteps so a walk can never run unbounded.
func NewHandlers(logger *slog.Logger, g *core.Graph, maxSteps int) *Handlers {
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	return &Handlers{logger: logger, graph: g, maxSteps: maxSteps}
}

// NewRouter wires the HTTP routes.
//
//	GET /healthz
//	GET /api/strategies
//	GET /api/cities
//	GET /api/routes?from=&to=&strategy=&seed=
func NewRouter(logger *slog.Logger, h *Handlers) http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/strategies", h.listStrategies).Methods(http.MethodGet)
	api.HandleFunc("/cities", h.listCities).Methods(http.MethodGet)
	api.HandleFunc("/routes", h.findRoute).Methods(http.MethodGet)

	r.Use(loggingMiddleware(logger))
	return r
}

func (h *Handlers) listStrategies(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"strategies": search.Names()})
}

type cityView struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

func (h *Handlers) listCities(w http.ResponseWriter, _ *http.Request) {
	cities := h.graph.Cities()
	out := make([]cityView, 0, len(cities))
	for _, c := range cities {
		out = append(out, cityView{Name: c.Name(), Lat: c.Lat(), Lng: c.Lng()})
	}
	respondJSON(w, http.StatusOK, map[string]any{"cities": out, "count": len(out)})
}

func (h *Handlers) findRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	from, err := h.graph.CityByName(q.Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	to, err := h.graph.CityByName(q.Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	name := q.Get("strategy")
	if name == "" {
		name = search.AStar{}.Name()
	}
	strategy, err := search.ByName(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	opts := []search.Option{search.WithMaxSteps(h.maxSteps), search.WithLogger(h.logger)}
	if v := q.Get("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "seed must be an integer")
			return
		}
		opts = append(opts, search.WithSeed(seed))
	}

	res, err := strategy.Run(r.Context(), h.graph, from, to, opts...)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Info("route search abandoned by client", "strategy", strategy.Name(), "error", err)
		writeError(w, StatusClientClosedRequest, err.Error())
		return
	case errors.Is(err, search.ErrStepLimit):
		h.logger.Warn("route search gave up", "strategy", strategy.Name(), "error", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	default:
		h.logger.Error("route search failed", "strategy", strategy.Name(), "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	trip, err := report.New(h.graph, strategy.Name(), from, to, res)
	if err != nil {
		h.logger.Error("route report failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

func loggingMiddleware(logger *slog.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)
			logger.Info("request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
