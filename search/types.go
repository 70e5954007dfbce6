// Package search defines strategies, trace/result types, options and
// sentinel errors for grid search.
package search

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathgrid/grid"
)

// Sentinel errors for search input validation.
var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOutOfBounds is returned when start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("search: position out of bounds")

	// ErrUnknownStrategy is returned for an undefined Strategy value or name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrBlockedEndpoint is returned under WithStrictEndpoints when start
	// or goal is a wall.
	ErrBlockedEndpoint = errors.New("search: start or goal is a wall")
)

// Strategy selects a search algorithm.
type Strategy int

const (
	// BreadthFirst explores in FIFO order and ignores weights.
	BreadthFirst Strategy = iota
	// DepthFirst explores in LIFO order and ignores weights.
	DepthFirst
	// Dijkstra expands by accumulated entry cost.
	Dijkstra
	// AStar expands by accumulated cost plus Manhattan distance to goal.
	AStar
	// Bidirectional runs two alternating breadth-first searches.
	Bidirectional
)

var strategyNames = [...]string{
	BreadthFirst:  "bfs",
	DepthFirst:    "dfs",
	Dijkstra:      "dijkstra",
	AStar:         "astar",
	Bidirectional: "bidirectional",
}

var strategyAliases = map[string]Strategy{
	"breadth-first":     BreadthFirst,
	"depth-first":       DepthFirst,
	"a*":                AStar,
	"bidirectional-bfs": Bidirectional,
}

// Strategies lists every strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{BreadthFirst, DepthFirst, Dijkstra, AStar, Bidirectional}
}

// String returns the canonical short name ("bfs", "astar", ...).
func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}

	return strategyNames[s]
}

// Valid reports whether s names a defined strategy.
func (s Strategy) Valid() bool {
	return s >= 0 && int(s) < len(strategyNames)
}

// ParseStrategy resolves a canonical name or alias, case-insensitively.
func ParseStrategy(name string) (Strategy, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range strategyNames {
		if n == key {
			return Strategy(i), nil
		}
	}
	if s, ok := strategyAliases[key]; ok {
		return s, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}

	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// Side tags which frontier produced a trace entry.
type Side int

const (
	// SideNone marks entries of unidirectional strategies.
	SideNone Side = iota
	// SideStart marks expansions of the start-side queue (Bidirectional).
	SideStart
	// SideGoal marks expansions of the goal-side queue (Bidirectional).
	SideGoal
)

// String returns "", "start" or "goal".
func (s Side) String() string {
	switch s {
	case SideStart:
		return "start"
	case SideGoal:
		return "goal"
	default:
		return ""
	}
}

// Visit is one expansion in a search trace.
type Visit struct {
	Pos  grid.Position
	Side Side
}

// Result holds the outcome of one search:
//   - Visited: expansions in the order they happened.
//   - Path:    start→goal inclusive, or empty when no route was found.
type Result struct {
	Visited []Visit
	Path    []grid.Position
}

// Found reports whether a route was recovered.
func (r *Result) Found() bool {
	return len(r.Path) > 0
}

// Steps returns the number of moves along Path, or -1 if no route exists.
func (r *Result) Steps() int {
	return len(r.Path) - 1
}

// Cost sums the entry weight of every cell on Path after the start.
// Returns 0 for an empty or single-cell path.
func (r *Result) Cost(g *grid.Grid) int {
	total := 0
	for i := 1; i < len(r.Path); i++ {
		total += g.Weight(r.Path[i])
	}

	return total
}

// Positions returns the trace without side tags.
func (r *Result) Positions() []grid.Position {
	out := make([]grid.Position, len(r.Visited))
	for i, v := range r.Visited {
		out[i] = v.Pos
	}

	return out
}

// Option configures a search call.
type Option func(*Options)

// Options holds parameters and callbacks for one search call.
type Options struct {
	// StrictEndpoints rejects a walled start or goal with ErrBlockedEndpoint.
	// By default walls at the endpoints are accepted: a walled start is
	// still expanded, a walled goal is never entered from a neighbor.
	// Bidirectional expands its goal side from the goal regardless.
	StrictEndpoints bool

	// OnVisit is called synchronously for every trace entry, right after it
	// is appended to Result.Visited.
	OnVisit func(Visit)
}

// DefaultOptions returns lenient endpoints and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		StrictEndpoints: false,
		OnVisit:         func(Visit) {},
	}
}

// WithStrictEndpoints rejects walls at start or goal.
func WithStrictEndpoints() Option {
	return func(o *Options) {
		o.StrictEndpoints = true
	}
}

// WithOnVisit registers a callback for every trace entry.
func WithOnVisit(fn func(Visit)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
