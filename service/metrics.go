package service

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Outcome labels.
const (
	outcomeFound       = "found"
	outcomeUnreachable = "unreachable"
	outcomeInvalid     = "invalid"
	outcomeGenerated   = "generated"
	outcomeUndersized  = "undersized"
)

var (
	// searchTotal counts searches by strategy and outcome
	// (found, unreachable, invalid).
	searchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathgrid_search_total",
		Help: "Total searches by strategy and outcome",
	}, []string{"strategy", "outcome"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathgrid_search_duration_seconds",
		Help:    "Search duration by strategy",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"strategy"})

	searchVisited = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pathgrid_search_visited_cells",
		Help:    "Trace length per search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 9),
	}, []string{"strategy"})

	// mazeTotal counts maze requests by outcome (generated, undersized, invalid).
	mazeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pathgrid_maze_total",
		Help: "Total maze generations by outcome",
	}, []string{"outcome"})

	mazeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "pathgrid_maze_duration_seconds",
		Help:    "Maze generation duration",
		Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
	})
)

var (
	tracerOnce sync.Once
	tracer     trace.Tracer
)

// getTracer returns the package tracer, resolved lazily from the global
// provider so that a provider installed after init is still picked up.
func getTracer() trace.Tracer {
	tracerOnce.Do(func() {
		tracer = otel.Tracer("github.com/katalvlaran/pathgrid/service")
	})

	return tracer
}
