package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

func quietEngine(opts ...Option) *Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewEngine(append([]Option{WithLogger(logger)}, opts...)...)
}

func TestEngine_Search(t *testing.T) {
	e := quietEngine()
	before := testutil.ToFloat64(searchTotal.WithLabelValues("dijkstra", outcomeFound))

	res, err := e.Search(context.Background(), SearchRequest{
		Rows:     3,
		Cols:     3,
		Weights:  []WeightedCell{{Pos: grid.Pos(0, 1), Weight: 20}},
		Start:    grid.Pos(0, 0),
		Goal:     grid.Pos(0, 2),
		Strategy: search.Dijkstra,
	})
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, 4, res.Cost)
	assert.Len(t, res.Path, 5)
	assert.Equal(t, search.Dijkstra, res.Strategy)

	after := testutil.ToFloat64(searchTotal.WithLabelValues("dijkstra", outcomeFound))
	assert.Equal(t, before+1, after)
}

func TestEngine_SearchUnreachable(t *testing.T) {
	e := quietEngine()
	before := testutil.ToFloat64(searchTotal.WithLabelValues("bfs", outcomeUnreachable))

	res, err := e.Search(context.Background(), SearchRequest{
		Rows:     3,
		Cols:     3,
		Walls:    []grid.Position{grid.Pos(0, 1), grid.Pos(1, 1), grid.Pos(2, 1)},
		Start:    grid.Pos(0, 0),
		Goal:     grid.Pos(2, 2),
		Strategy: search.BreadthFirst,
	})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.Len(t, res.Visited, 3)
	assert.Equal(t, before+1, testutil.ToFloat64(searchTotal.WithLabelValues("bfs", outcomeUnreachable)))
}

func TestEngine_SearchInvalid(t *testing.T) {
	e := quietEngine(WithMaxCells(100))
	cases := []struct {
		name string
		req  SearchRequest
		core error
	}{
		{"empty", SearchRequest{Rows: 0, Cols: 3}, grid.ErrEmptyGrid},
		{"too large", SearchRequest{Rows: 11, Cols: 10}, nil},
		{"wall out", SearchRequest{Rows: 2, Cols: 2, Walls: []grid.Position{grid.Pos(5, 5)}}, grid.ErrOutOfBounds},
		{"bad weight", SearchRequest{Rows: 2, Cols: 2, Weights: []WeightedCell{{Pos: grid.Pos(0, 0), Weight: -2}}}, grid.ErrBadWeight},
		{"start out", SearchRequest{Rows: 2, Cols: 2, Start: grid.Pos(2, 0)}, search.ErrOutOfBounds},
		{"strategy", SearchRequest{Rows: 2, Cols: 2, Strategy: search.Strategy(77)}, search.ErrUnknownStrategy},
		{"strict", SearchRequest{Rows: 2, Cols: 2, Walls: []grid.Position{grid.Pos(1, 1)}, Goal: grid.Pos(1, 1), Strict: true}, search.ErrBlockedEndpoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := e.Search(context.Background(), tc.req)
			assert.Nil(t, res)
			if !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("err = %v, want ErrInvalidRequest", err)
			}
			if tc.core != nil {
				assert.ErrorIs(t, err, tc.core)
			}
		})
	}
}

func TestEngine_GenerateMaze(t *testing.T) {
	e := quietEngine()
	seed := int64(5)

	a, err := e.GenerateMaze(context.Background(), MazeRequest{Rows: 15, Cols: 15, Seed: &seed})
	require.NoError(t, err)
	require.True(t, a.Generated)
	b, err := e.GenerateMaze(context.Background(), MazeRequest{Rows: 15, Cols: 15, Seed: &seed})
	require.NoError(t, err)
	assert.Equal(t, a.Maze, b.Maze)

	small, err := e.GenerateMaze(context.Background(), MazeRequest{Rows: 5, Cols: 5})
	require.NoError(t, err)
	assert.False(t, small.Generated)
	assert.Nil(t, small.Maze)
}

func TestEngine_MazeSeedFallback(t *testing.T) {
	e := quietEngine(WithMazeSeed(9))
	a, err := e.GenerateMaze(context.Background(), MazeRequest{Rows: 11, Cols: 11})
	require.NoError(t, err)
	b, err := e.GenerateMaze(context.Background(), MazeRequest{Rows: 11, Cols: 11})
	require.NoError(t, err)
	assert.Equal(t, a.Maze.Steps, b.Maze.Steps)
}

func TestEngine_MazeTooLarge(t *testing.T) {
	e := quietEngine(WithMaxCells(50))
	before := testutil.ToFloat64(mazeTotal.WithLabelValues(outcomeInvalid))

	_, err := e.GenerateMaze(context.Background(), MazeRequest{Rows: 9, Cols: 9})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Equal(t, before+1, testutil.ToFloat64(mazeTotal.WithLabelValues(outcomeInvalid)))
}

func TestEngine_MazeNegativeSize(t *testing.T) {
	e := quietEngine()
	before := testutil.ToFloat64(mazeTotal.WithLabelValues(outcomeInvalid))

	res, err := e.GenerateMaze(context.Background(), MazeRequest{Rows: -5, Cols: 100000000})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Nil(t, res)
	assert.Equal(t, before+1, testutil.ToFloat64(mazeTotal.WithLabelValues(outcomeInvalid)))
}

func TestOptions(t *testing.T) {
	o := DefaultOptions()
	WithMaxCells(-1)(&o)
	WithLogger(nil)(&o)
	assert.Equal(t, DefaultMaxCells, o.MaxCells)
	assert.NotNil(t, o.Logger)
	assert.Nil(t, o.MazeSeed)

	assert.Equal(t, 10, NewEngine(WithMaxCells(10)).MaxCells())
}
