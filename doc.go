// Package pathgrid is an in-memory playground for painting obstacles and
// weighted terrain on a grid and watching graph-search strategies explore
// it.
//
// What is pathgrid?
//
//	A small, deterministic core plus an HTTP service around it:
//		• grid/   : rectangular cell matrix, walls, weights, ASCII codec
//		• search/ : BFS, DFS, Dijkstra, A*, bidirectional BFS with traces
//		• maze/   : randomized Kruskal perfect mazes over a disjoint set
//		• service/: request validation, logging, metrics and tracing
//		• httpapi/: gin routes: /v1/search, /v1/maze, /v1/strategies
//		• config/ : environment and .env configuration
//
// Every search returns the ordered trace of expanded cells and the
// recovered route, so a caller can replay exploration with its own timing.
// Identical inputs (and, for mazes, identical seeds) produce identical
// output.
//
// Quick ASCII example:
//
//	S.9.G        BFS walks straight through the 9;
//	.....        Dijkstra and A* go around it.
//
//	go run github.com/katalvlaran/pathgrid/cmd/pathgrid
package pathgrid
