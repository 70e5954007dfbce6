package maze_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/pathgrid/maze"
)

// BenchmarkGenerate measures instant-mode generation for growing boards.
func BenchmarkGenerate(b *testing.B) {
	for _, n := range []int{21, 101, 201} {
		b.Run(fmt.Sprintf("%dx%d", n, n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = maze.Generate(n, n, maze.WithSeed(int64(i)))
			}
		})
	}
}
