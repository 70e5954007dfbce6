package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
	"github.com/katalvlaran/pathgrid/search"
)

// ErrInvalidRequest marks caller mistakes. Transports map it to a client
// error; the wrapped core sentinel stays reachable through errors.Is.
var ErrInvalidRequest = errors.New("service: invalid request")

// DefaultMaxCells bounds rows×cols for one request.
const DefaultMaxCells = 40000

// WeightedCell assigns an entry cost to one cell.
type WeightedCell struct {
	Pos    grid.Position
	Weight int
}

// SearchRequest describes one board and one search over it.
type SearchRequest struct {
	Rows     int
	Cols     int
	Walls    []grid.Position
	Weights  []WeightedCell
	Start    grid.Position
	Goal     grid.Position
	Strategy search.Strategy
	Strict   bool
}

// SearchResponse is the outcome of Engine.Search.
type SearchResponse struct {
	Strategy search.Strategy
	Visited  []search.Visit
	Path     []grid.Position
	Found    bool
	Cost     int
	Elapsed  time.Duration
}

// MazeRequest asks for a generated maze. A nil Seed falls back to the
// engine seed, then to a time-seeded source.
type MazeRequest struct {
	Rows     int
	Cols     int
	Animated bool
	Seed     *int64
}

// MazeResponse is the outcome of Engine.GenerateMaze.
// Maze is nil when Generated is false.
type MazeResponse struct {
	Generated bool
	Maze      *maze.Result
	Elapsed   time.Duration
}

// Option configures an Engine.
type Option func(*Options)

// Options holds Engine parameters.
type Options struct {
	Logger   *slog.Logger
	MaxCells int
	MazeSeed *int64
}

// DefaultOptions returns slog.Default, DefaultMaxCells and no fixed seed.
func DefaultOptions() Options {
	return Options{
		Logger:   slog.Default(),
		MaxCells: DefaultMaxCells,
	}
}

// WithLogger sets the request logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMaxCells bounds rows×cols per request. Non-positive values are ignored.
func WithMaxCells(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxCells = n
		}
	}
}

// WithMazeSeed fixes the seed used when a maze request carries none.
func WithMazeSeed(seed int64) Option {
	return func(o *Options) {
		o.MazeSeed = &seed
	}
}
