package bfs

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	graph *core.Adjacency
	opts  Options
	queue []int32
	head  int
	dist  *core.Distances
}

// BFS runs breadth-first search on a from start and returns the hop distance
// to every vertex of a. Unreachable vertices hold core.Infinity.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
func BFS(a *core.Adjacency, start core.Vertex, opts ...Option) (*core.Distances, error) {
	if a == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s, ok := a.Slot(start)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	w := &walker{
		graph: a,
		opts:  o,
		queue: make([]int32, 0, a.Len()),
		dist:  a.NewDistances(),
	}
	w.enqueue(int32(s), 0)
	w.loop()

	return w.dist, nil
}

// enqueue records d for slot s and appends it to the frontier.
func (w *walker) enqueue(s int32, d core.Distance) {
	w.dist.Set(int(s), d)
	w.opts.OnEnqueue(w.graph.ID(int(s)), d)
	w.queue = append(w.queue, s)
}

// loop drains the frontier, relaxing every neighbor of each popped vertex.
func (w *walker) loop() {
	for w.head < len(w.queue) {
		u := w.queue[w.head]
		w.head++

		next := w.dist.At(int(u)) + 1
		for _, v := range w.graph.NeighborSlots(int(u)) {
			if next < w.dist.At(int(v)) {
				w.enqueue(v, next)
			}
		}
	}
}
