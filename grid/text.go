package grid

import (
	"fmt"
	"strings"
)

// Layout is a parsed ASCII board together with its optional markers.
type Layout struct {
	Grid     *Grid
	Start    Position
	Goal     Position
	HasStart bool
	HasGoal  bool
}

// Parse reads an ASCII layout (see package doc for the alphabet).
// Blank lines are skipped and each line is trimmed, so layouts may be
// indented inside raw string literals.
// Returns ErrEmptyGrid, ErrNonRectangular or a wrapped ErrLayout.
func Parse(text string) (*Layout, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	cols := len(lines[0])
	for _, line := range lines {
		if len(line) != cols {
			return nil, ErrNonRectangular
		}
	}

	g, err := New(len(lines), cols)
	if err != nil {
		return nil, err
	}
	l := &Layout{Grid: g}
	for r, line := range lines {
		for c := 0; c < len(line); c++ {
			p, i := Pos(r, c), r*cols+c
			switch ch := line[c]; {
			case ch == '#':
				g.cells[i].Wall = true
			case ch == '.':
			case ch >= '1' && ch <= '9':
				g.cells[i].Weight = int(ch - '0')
			case ch == 'S':
				if l.HasStart {
					return nil, fmt.Errorf("%w: second start marker at %s", ErrLayout, p)
				}
				l.Start, l.HasStart = p, true
			case ch == 'G':
				if l.HasGoal {
					return nil, fmt.Errorf("%w: second goal marker at %s", ErrLayout, p)
				}
				l.Goal, l.HasGoal = p, true
			default:
				return nil, fmt.Errorf("%w: unknown symbol %q at %s", ErrLayout, ch, p)
			}
		}
	}

	return l, nil
}

// MustParse is like Parse but panics on error. Intended for tests and
// examples with literal layouts.
func MustParse(text string) *Layout {
	l, err := Parse(text)
	if err != nil {
		panic(err)
	}

	return l
}

// Format renders g in the layout alphabet, one line per row. Weights above
// 9 are drawn as '+'. marks overrides the symbol drawn at given positions
// (for example 'S', 'G' or '*' for a path).
func Format(g *Grid, marks map[Position]byte) string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Pos(r, c)
			if m, ok := marks[p]; ok {
				b.WriteByte(m)
				continue
			}
			cell := g.cells[r*g.cols+c]
			switch {
			case cell.Wall:
				b.WriteByte('#')
			case cell.Weight <= DefaultWeight:
				b.WriteByte('.')
			case cell.Weight <= 9:
				b.WriteByte(byte('0' + cell.Weight))
			default:
				b.WriteByte('+')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}

// String renders the grid without markers.
func (g *Grid) String() string {
	return Format(g, nil)
}
