package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and access.
var (
	// ErrEmptyGrid indicates the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrBadWeight indicates a negative cell weight.
	ErrBadWeight = errors.New("grid: cell weight must not be negative")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrLayout indicates a malformed ASCII layout.
	ErrLayout = errors.New("grid: malformed layout")
)

// DefaultWeight is the cost to enter a cell that carries no terrain.
const DefaultWeight = 1

// Position addresses one cell by 0-indexed row and column.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns |Δrow| + |Δcol| between p and q.
func (p Position) Manhattan(q Position) int {
	return abs(p.Row-q.Row) + abs(p.Col-q.Col)
}

// Cell is one square of the board.
type Cell struct {
	Wall   bool // impassable when true
	Weight int  // cost to enter; always ≥ 1 inside a Grid
}

// Grid is a rows×cols board. Its shape never changes after construction;
// cell contents may be edited through SetWall and SetWeight.
type Grid struct {
	rows, cols int
	cells      []Cell // row-major
}

// offsets is the fixed neighbor order: up, down, left, right.
var offsets = [4]Position{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
