package search_test

import (
	"fmt"

	"github.com/katalvlaran/pathgrid/grid"
	"github.com/katalvlaran/pathgrid/search"
)

// ExampleSearch runs every strategy on the same board.
//
// The digit 9 marks expensive terrain in the middle of the direct route.
// BFS and DFS ignore it; Dijkstra and AStar walk around.
func ExampleSearch() {
	l := grid.MustParse(`
		S.9.G
		.....
	`)
	for _, s := range search.Strategies() {
		res, err := search.Search(l.Grid, l.Start, l.Goal, s)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%-13s steps=%d cost=%2d\n", s, res.Steps(), res.Cost(l.Grid))
	}
	// Output:
	// bfs           steps=4 cost=12
	// dfs           steps=4 cost=12
	// dijkstra      steps=6 cost= 6
	// astar         steps=6 cost= 6
	// bidirectional steps=4 cost=12
}

// ExampleBidirectionalBFS prints which frontier produced each expansion.
func ExampleBidirectionalBFS() {
	g, _ := grid.New(1, 5)
	res, _ := search.BidirectionalBFS(g, grid.Pos(0, 0), grid.Pos(0, 4))
	for _, v := range res.Visited {
		fmt.Printf("%s %s\n", v.Side, v.Pos)
	}
	fmt.Println(res.Path)
	// Output:
	// start (0,0)
	// goal (0,4)
	// start (0,1)
	// goal (0,3)
	// start (0,2)
	// [(0,0) (0,1) (0,2) (0,3) (0,4)]
}

// ExampleResult_Found shows the unreachable outcome.
func ExampleResult_Found() {
	l := grid.MustParse(`
		S#G
	`)
	res, _ := search.BFS(l.Grid, l.Start, l.Goal)
	fmt.Println(res.Found(), res.Positions())
	// Output:
	// false [(0,0)]
}
