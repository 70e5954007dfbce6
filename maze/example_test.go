package maze_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/maze"
	"github.com/katalvlaran/pathgrid/search"
)

// ExampleGenerate builds a seeded maze and solves it.
//
// The open cells form a tree, so every strategy that reaches the goal
// returns the same single route.
func ExampleGenerate() {
	m, ok := maze.Generate(15, 21, maze.WithSeed(7), maze.WithAnimated(true))
	if !ok {
		fmt.Println("too small")
		return
	}
	g := m.Grid()

	bfs, _ := search.BFS(g, m.Start, m.Goal)
	dfs, _ := search.DFS(g, m.Start, m.Goal)
	fmt.Println(bfs.Found(), len(g.Components()))
	fmt.Println(fmt.Sprint(bfs.Path) == fmt.Sprint(dfs.Path))
	// Output:
	// true 1
	// true
}

// ExampleGenerate_undersized shows the silent no-op boundary.
func ExampleGenerate_undersized() {
	m, ok := maze.Generate(6, 6)
	fmt.Println(m == nil, ok)
	// Output:
	// true false
}

// ExampleResult_Grid renders a maze built without shuffling.
func ExampleResult_Grid() {
	m, _ := maze.Generate(7, 9, maze.WithSource(orderedSource{}))
	fmt.Print(grid.Format(m.Grid(), map[grid.Position]byte{m.Start: 'S', m.Goal: 'G'}))
	// Output:
	// #########
	// #S......#
	// #.#.#.#.#
	// #.#.#.#.#
	// #.#.#.#.#
	// #.#.#.#G#
	// #########
}
