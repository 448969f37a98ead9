package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

// Dijkstra computes shortest weighted distances from start to every vertex
// of w. Unreachable vertices hold core.Infinity.
//
// Preconditions and validation (in order):
//  1. w must be non-nil (ErrGraphNil).
//  2. w must contain start (ErrStartVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(w *core.Weighted, start core.Vertex, opts ...Option) (*core.Distances, error) {
	if w == nil {
		return nil, ErrGraphNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	s, ok := w.Slot(start)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	r := &runner{
		g:       w,
		options: cfg,
		dist:    w.NewDistances(),
		pq:      make(nodePQ, 0, w.Len()),
	}
	r.init(int32(s))
	r.process()

	return r.dist, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Weighted  // read-only within Dijkstra
	options Options         // hooks
	dist    *core.Distances // slot → best known cost
	pq      nodePQ          // lazy min-heap
}

// init sets the start distance to zero and seeds the heap with it.
func (r *runner) init(start int32) {
	r.dist.Set(int(start), 0)
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{slot: start, cost: 0})
}

// process pops the cheapest entry until the heap is empty, skipping entries
// whose cost was superseded after they were pushed.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if item.cost > r.dist.At(int(item.slot)) {
			r.options.OnStale(r.g.ID(int(item.slot)), item.cost)
			continue
		}
		r.options.OnSettle(r.g.ID(int(item.slot)), item.cost)
		r.relax(item)
	}
}

// relax tries every arc of u and pushes each strictly cheaper neighbor.
func (r *runner) relax(u nodeItem) {
	var next uint64
	for _, arc := range r.g.ArcsOf(int(u.slot)) {
		// widen so cost+weight cannot wrap
		next = uint64(u.cost) + uint64(arc.Weight)
		if next >= uint64(r.dist.At(int(arc.To))) {
			continue
		}
		r.dist.Set(int(arc.To), core.Distance(next))
		heap.Push(&r.pq, nodeItem{slot: arc.To, cost: core.Distance(next)})
	}
}

// nodeItem is a heap entry: a slot and the cost it was pushed with.
type nodeItem struct {
	slot int32
	cost core.Distance
}

// nodePQ is a min-heap of nodeItem ordered by cost ascending.
type nodePQ []nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop is called by heap.Pop and removes the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
