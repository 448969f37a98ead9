package sampling

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/degrees/bfs"
	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/dijkstra"
)

// Run samples k distinct vertices of vs uniformly at random and returns the
// shortest distance, as computed by fn, between every unordered pair of them.
//
// Errors: ErrBadSampleSize, ErrOversizedSample, ErrNilSource, or the first
// error returned by fn. No partial result is returned on error.
//
// Complexity: k runs of fn plus O(|V|) for the shuffle.
func Run(vs VertexSet, k int, fn SingleSource, opts ...Option) ([]DistancePair, error) {
	if fn == nil {
		return nil, ErrNilSource
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadSampleSize, k)
	}
	if n := vs.Len(); k > n {
		return nil, fmt.Errorf("%w: k=%d > |V|=%d", ErrOversizedSample, k, n)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sample := Sample(vs, k, o.Rand)
	rows := make([][]DistancePair, k)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(o.Workers)
	for i := range sample {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			row, err := pairsFrom(sample, i, fn)
			if err != nil {
				return err
			}
			rows[i] = row
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]DistancePair, 0, k*(k-1)/2)
	for _, row := range rows {
		out = append(out, row...)
	}
	return out, nil
}

// Sample returns the first k vertices of a uniform shuffle of vs.
// The caller guarantees 0 <= k <= vs.Len().
func Sample(vs VertexSet, k int, r *rand.Rand) []core.Vertex {
	vertices := vs.Vertices()
	r.Shuffle(len(vertices), func(i, j int) {
		vertices[i], vertices[j] = vertices[j], vertices[i]
	})
	return vertices[:k:k]
}

// pairsFrom runs fn from sample[i] and reads the distance to every later
// sampled vertex.
func pairsFrom(sample []core.Vertex, i int, fn SingleSource) ([]DistancePair, error) {
	src := sample[i]
	dist, err := fn(src)
	if err != nil {
		return nil, fmt.Errorf("sampling: source %d: %w", src, err)
	}
	row := make([]DistancePair, 0, len(sample)-i-1)
	for _, dst := range sample[i+1:] {
		row = append(row, DistancePair{Node1: src, Node2: dst, Distance: dist.To(dst)})
	}
	return row, nil
}

// BFS adapts bfs.BFS over a to a SingleSource.
func BFS(a *core.Adjacency, opts ...bfs.Option) SingleSource {
	return func(start core.Vertex) (*core.Distances, error) {
		return bfs.BFS(a, start, opts...)
	}
}

// Dijkstra adapts dijkstra.Dijkstra over w to a SingleSource.
func Dijkstra(w *core.Weighted, opts ...dijkstra.Option) SingleSource {
	return func(start core.Vertex) (*core.Distances, error) {
		return dijkstra.Dijkstra(w, start, opts...)
	}
}
