package bfs_test

import (
	"testing"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain of N vertices.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	edges, _ := builder.Path(N)
	a := core.Build(edges)

	b.ReportAllocs()
	b.SetBytes(int64(N + len(edges)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(a, 0)
	}
}

// BenchmarkBFS_RandomSparse runs BFS on a sparse random graph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	edges, _ := builder.RandomSparse(2000, 0.005, builder.WithSeed(42))
	a := core.Build(edges)
	start := a.Vertices()[0]

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(a, start)
	}
}
