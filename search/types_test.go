package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/search"
)

func TestParseStrategy(t *testing.T) {
	cases := map[string]search.Strategy{
		"bfs":           search.BreadthFirst,
		" BFS ":         search.BreadthFirst,
		"depth-first":   search.DepthFirst,
		"Dijkstra":      search.Dijkstra,
		"a*":            search.AStar,
		"astar":         search.AStar,
		"bidirectional": search.Bidirectional,
	}
	for in, want := range cases {
		got, err := search.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := search.ParseStrategy("greedy")
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
}

func TestStrategy_Text(t *testing.T) {
	for _, s := range search.Strategies() {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var back search.Strategy
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}

	_, err := search.Strategy(-1).MarshalText()
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
	assert.Equal(t, "Strategy(9)", search.Strategy(9).String())
	assert.False(t, search.Strategy(9).Valid())
}

func TestSide_String(t *testing.T) {
	assert.Equal(t, "", search.SideNone.String())
	assert.Equal(t, "start", search.SideStart.String())
	assert.Equal(t, "goal", search.SideGoal.String())
}
