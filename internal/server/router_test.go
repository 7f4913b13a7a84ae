package server_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadtrip/core"
	"github.com/katalvlaran/roadtrip/europe"
	"github.com/katalvlaran/roadtrip/internal/report"
	"github.com/katalvlaran/roadtrip/internal/server"
)

func newRouter(t *testing.T, g *core.Graph, maxSteps int) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return server.NewRouter(logger, server.NewHandlers(logger, g, maxSteps))
}

func europeRouter(t *testing.T) http.Handler {
	t.Helper()
	g, err := europe.Graph()
	require.NoError(t, err)
	return newRouter(t, g, 100000)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := get(t, europeRouter(t), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestListStrategies(t *testing.T) {
	rec := get(t, europeRouter(t), "/api/strategies")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"strategies":["random-walk","random-dfs","random-bfs","uniform-cost","astar"]}`, rec.Body.String())
}

func TestListCities(t *testing.T) {
	rec := get(t, europeRouter(t), "/api/cities")
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 17, body.Count)
}

func TestFindRoute_AStar(t *testing.T) {
	rec := get(t, europeRouter(t), "/api/routes?from=rome&to=berlin&strategy=astar&seed=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var trip report.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trip))
	assert.True(t, trip.Found)
	assert.Equal(t, "astar", trip.Strategy)
	assert.Equal(t, 6, trip.Steps)
	assert.Equal(t, "Rome", trip.Legs[0].From)
	assert.Equal(t, "Berlin", trip.Legs[len(trip.Legs)-1].To)
	assert.InDelta(t, 2152, trip.TotalKm, 1)
}

func TestFindRoute_DefaultStrategy(t *testing.T) {
	rec := get(t, europeRouter(t), "/api/routes?from=Paris&to=Tours")
	require.Equal(t, http.StatusOK, rec.Code)
	var trip report.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trip))
	assert.Equal(t, "astar", trip.Strategy)
	assert.Equal(t, 1, trip.Steps)
}

func TestFindRoute_NoRoute(t *testing.T) {
	rec := get(t, europeRouter(t), "/api/routes?from=Rome&to=Verona&strategy=random-bfs")
	require.Equal(t, http.StatusOK, rec.Code)
	var trip report.Trip
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trip))
	assert.False(t, trip.Found)
	assert.Empty(t, trip.Legs)
}

func TestFindRoute_BadRequests(t *testing.T) {
	h := europeRouter(t)
	for _, target := range []string{
		"/api/routes?from=Atlantis&to=Berlin",
		"/api/routes?from=Rome&to=",
		"/api/routes?from=Rome&to=Berlin&strategy=teleport",
		"/api/routes?from=Rome&to=Berlin&seed=abc",
	} {
		rec := get(t, h, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, rec.Body.String(), `"error"`, target)
	}
}

func TestFindRoute_StepLimit(t *testing.T) {
	// The walk towards isolated Verona can only stop at the limit.
	g, err := europe.Graph()
	require.NoError(t, err)
	rec := get(t, newRouter(t, g, 50), "/api/routes?from=Rome&to=Verona&strategy=random-walk&seed=3")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "step limit")
}

func TestFindRoute_ZeroMaxStepsStillBounded(t *testing.T) {
	g, err := europe.Graph()
	require.NoError(t, err)
	h := newRouter(t, g, 0)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/routes?from=Rome&to=Verona&strategy=random-walk&seed=1", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.NoError(t, ctx.Err(), "walk must stop at the default limit, not the deadline")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), fmt.Sprintf("%d steps", server.DefaultMaxSteps))
}

func TestFindRoute_ClientGone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodGet, "/api/routes?from=Rome&to=Berlin&strategy=random-bfs", nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	europeRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, server.StatusClientClosedRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "context canceled")
}

func TestMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/strategies", nil)
	rec := httptest.NewRecorder()
	europeRouter(t).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
