package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/dijkstra"
)

// BenchmarkDijkstra_RandomWeighted runs Dijkstra on a sparse graph with
// weights in [1,100].
func BenchmarkDijkstra_RandomWeighted(b *testing.B) {
	edges, _ := builder.RandomSparse(2000, 0.005, builder.WithSeed(42))
	weighted, _ := builder.Weigh(edges, 1, 100, builder.WithSeed(42))
	w := core.BuildWeightedEdges(weighted)
	start := w.Vertices()[0]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Dijkstra(w, start)
	}
}
