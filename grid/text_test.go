package grid_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/grid"
)

// TestParse_Markers reads walls, weights and both markers.
func TestParse_Markers(t *testing.T) {
	l, err := grid.Parse(`
		S.#
		.5.
		#.G
	`)
	require.NoError(t, err)
	require.True(t, l.HasStart)
	require.True(t, l.HasGoal)

	assert.Equal(t, grid.Pos(0, 0), l.Start)
	assert.Equal(t, grid.Pos(2, 2), l.Goal)
	assert.True(t, l.Grid.IsWall(grid.Pos(0, 2)))
	assert.True(t, l.Grid.IsWall(grid.Pos(2, 0)))
	assert.Equal(t, 5, l.Grid.Weight(grid.Pos(1, 1)))
	assert.Equal(t, 1, l.Grid.Weight(grid.Pos(2, 2)))
}

// TestParse_Errors covers every rejection path.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
	}{
		{"Empty", "  \n\n", grid.ErrEmptyGrid},
		{"Ragged", "...\n..", grid.ErrNonRectangular},
		{"Symbol", "..x", grid.ErrLayout},
		{"TwoStarts", "S.S", grid.ErrLayout},
		{"TwoGoals", "G\nG", grid.ErrLayout},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid.Parse(tc.in); !errors.Is(err, tc.err) {
				t.Errorf("Parse(%q) error = %v; want %v", tc.in, err, tc.err)
			}
		})
	}
}

// TestFormat draws walls, weights, heavy terrain and marks.
func TestFormat(t *testing.T) {
	g, _ := grid.New(2, 3)
	_ = g.SetWall(grid.Pos(0, 1), true)
	_ = g.SetWeight(grid.Pos(1, 0), 5)
	_ = g.SetWeight(grid.Pos(1, 2), 20)

	assert.Equal(t, ".#.\n5.+\n", g.String())
	marks := map[grid.Position]byte{grid.Pos(0, 0): 'S', grid.Pos(1, 1): '*'}
	assert.Equal(t, "S#.\n5*+\n", grid.Format(g, marks))
}

// TestMustParse_Panics confirms the panic on malformed input.
func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { grid.MustParse("?") })
}
