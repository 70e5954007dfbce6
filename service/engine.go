package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
	"github.com/katalvlaran/pathgrid/search"
)

// Engine serves search and maze requests. It holds no per-request state
// and is safe for concurrent use.
type Engine struct {
	log      *slog.Logger
	maxCells int
	mazeSeed *int64
}

// NewEngine builds an Engine from options.
func NewEngine(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Engine{
		log:      o.Logger,
		maxCells: o.MaxCells,
		mazeSeed: o.MazeSeed,
	}
}

// MaxCells returns the rows×cols bound applied to requests.
func (e *Engine) MaxCells() int {
	return e.maxCells
}

// Search builds the requested board and runs one strategy over it.
// Input problems return an error wrapping ErrInvalidRequest and the core
// sentinel. An unreachable goal is a successful response with Found false.
func (e *Engine) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	ctx, span := getTracer().Start(ctx, "service.Engine.Search",
		trace.WithAttributes(
			attribute.String("strategy", req.Strategy.String()),
			attribute.Int("rows", req.Rows),
			attribute.Int("cols", req.Cols),
		),
	)
	defer span.End()

	label := req.Strategy.String()
	if !req.Strategy.Valid() {
		label = "unknown"
	}

	g, err := e.buildGrid(req)
	if err != nil {
		return nil, e.rejectSearch(ctx, span, label, err)
	}

	var opts []search.Option
	if req.Strict {
		opts = append(opts, search.WithStrictEndpoints())
	}

	started := time.Now()
	res, err := search.Search(g, req.Start, req.Goal, req.Strategy, opts...)
	elapsed := time.Since(started)
	if err != nil {
		return nil, e.rejectSearch(ctx, span, label, fmt.Errorf("%w: %w", ErrInvalidRequest, err))
	}

	out := &SearchResponse{
		Strategy: req.Strategy,
		Visited:  res.Visited,
		Path:     res.Path,
		Found:    res.Found(),
		Cost:     res.Cost(g),
		Elapsed:  elapsed,
	}

	outcome := outcomeUnreachable
	if out.Found {
		outcome = outcomeFound
	}
	searchTotal.WithLabelValues(label, outcome).Inc()
	searchDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	searchVisited.WithLabelValues(label).Observe(float64(len(out.Visited)))

	span.SetAttributes(
		attribute.Int("visited", len(out.Visited)),
		attribute.Int("path_len", len(out.Path)),
		attribute.Int("cost", out.Cost),
		attribute.Bool("found", out.Found),
	)
	span.SetStatus(codes.Ok, "search completed")

	e.log.InfoContext(ctx, "search completed",
		slog.String("strategy", label),
		slog.Int("rows", req.Rows),
		slog.Int("cols", req.Cols),
		slog.Int("visited", len(out.Visited)),
		slog.Int("path_len", len(out.Path)),
		slog.Int("cost", out.Cost),
		slog.Duration("elapsed", elapsed),
	)

	return out, nil
}

// rejectSearch records an invalid search and returns err unchanged.
func (e *Engine) rejectSearch(ctx context.Context, span trace.Span, label string, err error) error {
	searchTotal.WithLabelValues(label, outcomeInvalid).Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, "invalid request")
	e.log.WarnContext(ctx, "search rejected",
		slog.String("strategy", label),
		slog.String("error", err.Error()),
	)

	return err
}

// buildGrid materializes the request board. Later entries win: a weight
// listed after a wall on the same cell clears the wall.
func (e *Engine) buildGrid(req SearchRequest) (*grid.Grid, error) {
	if err := e.checkSize(req.Rows, req.Cols); err != nil {
		return nil, err
	}
	g, err := grid.New(req.Rows, req.Cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	for _, p := range req.Walls {
		if err = g.SetWall(p, true); err != nil {
			return nil, fmt.Errorf("%w: wall: %w", ErrInvalidRequest, err)
		}
	}
	for _, wc := range req.Weights {
		if err = g.SetWeight(wc.Pos, wc.Weight); err != nil {
			return nil, fmt.Errorf("%w: weight: %w", ErrInvalidRequest, err)
		}
	}

	return g, nil
}

// checkSize rejects boards above the configured cell budget.
func (e *Engine) checkSize(rows, cols int) error {
	if rows > 0 && cols > 0 && rows > e.maxCells/cols {
		return fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidRequest, rows, cols, e.maxCells)
	}

	return nil
}

// GenerateMaze builds a maze. An undersized board is not an error: the
// response reports Generated false. Negative sizes wrap ErrInvalidRequest.
func (e *Engine) GenerateMaze(ctx context.Context, req MazeRequest) (*MazeResponse, error) {
	ctx, span := getTracer().Start(ctx, "service.Engine.GenerateMaze",
		trace.WithAttributes(
			attribute.Int("rows", req.Rows),
			attribute.Int("cols", req.Cols),
			attribute.Bool("animated", req.Animated),
		),
	)
	defer span.End()

	err := e.checkSize(req.Rows, req.Cols)
	if req.Rows < 0 || req.Cols < 0 {
		err = fmt.Errorf("%w: negative maze size %dx%d", ErrInvalidRequest, req.Rows, req.Cols)
	}
	if err != nil {
		mazeTotal.WithLabelValues(outcomeInvalid).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		e.log.WarnContext(ctx, "maze rejected", slog.String("error", err.Error()))

		return nil, err
	}

	opts := []maze.Option{maze.WithAnimated(req.Animated)}
	seed := req.Seed
	if seed == nil {
		seed = e.mazeSeed
	}
	if seed != nil {
		opts = append(opts, maze.WithSeed(*seed))
		span.SetAttributes(attribute.Int64("seed", *seed))
	}

	started := time.Now()
	m, ok := maze.Generate(req.Rows, req.Cols, opts...)
	elapsed := time.Since(started)
	mazeDuration.Observe(elapsed.Seconds())

	if !ok {
		mazeTotal.WithLabelValues(outcomeUndersized).Inc()
		span.SetStatus(codes.Ok, "undersized")
		e.log.DebugContext(ctx, "maze skipped: board too small",
			slog.Int("rows", req.Rows),
			slog.Int("cols", req.Cols),
		)

		return &MazeResponse{Generated: false, Elapsed: elapsed}, nil
	}

	mazeTotal.WithLabelValues(outcomeGenerated).Inc()
	span.SetAttributes(
		attribute.Int("walls", m.Walls.Size()),
		attribute.Int("weights", len(m.Weights)),
		attribute.Int("steps", len(m.Steps)),
	)
	span.SetStatus(codes.Ok, "maze generated")
	e.log.InfoContext(ctx, "maze generated",
		slog.Int("rows", req.Rows),
		slog.Int("cols", req.Cols),
		slog.Bool("animated", req.Animated),
		slog.Int("walls", m.Walls.Size()),
		slog.Int("weights", len(m.Weights)),
		slog.Duration("elapsed", elapsed),
	)

	return &MazeResponse{Generated: true, Maze: m, Elapsed: elapsed}, nil
}
