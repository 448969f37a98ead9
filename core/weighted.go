package core

// Weighted is the weighted adjacency arena: per slot, an ordered list of
// (neighbor, weight) arcs.
type Weighted struct {
	idx   *index
	arcs  [][]Arc
	edges int
}

// BuildWeighted derives a Weighted arena from a, assigning weight 1 to every
// neighbor entry. Per-vertex order and count of entries are preserved and the
// slot index is shared with a.
//
// Complexity: O(V + E).
func BuildWeighted(a *Adjacency) *Weighted {
	w := &Weighted{
		idx:   a.idx,
		arcs:  make([][]Arc, len(a.nbrs)),
		edges: a.edges,
	}
	for s, list := range a.nbrs {
		if len(list) == 0 {
			continue
		}
		arcs := make([]Arc, len(list))
		for i, t := range list {
			arcs[i] = Arc{To: t, Weight: 1}
		}
		w.arcs[s] = arcs
	}
	return w
}

// BuildWeightedEdges builds a Weighted arena directly from weighted edges,
// with the same undirected insertion rules as Build.
//
// Complexity: O(V + E).
func BuildWeightedEdges(edges []WeightedEdge, opts ...Option) *Weighted {
	o := resolve(opts)
	w := &Weighted{
		idx:   newIndex(o.capacity),
		arcs:  make([][]Arc, 0, o.capacity),
		edges: len(edges),
	}
	for _, v := range o.vertices {
		w.add(v)
	}
	var s, t int32
	for _, e := range edges {
		s = w.add(e.From)
		t = w.add(e.To)
		w.arcs[s] = append(w.arcs[s], Arc{To: t, Weight: e.Weight})
		w.arcs[t] = append(w.arcs[t], Arc{To: s, Weight: e.Weight})
	}
	return w
}

func (w *Weighted) add(v Vertex) int32 {
	s, fresh := w.idx.intern(v)
	if fresh {
		w.arcs = append(w.arcs, nil)
	}
	return s
}

// Len returns the number of distinct vertices.
func (w *Weighted) Len() int { return len(w.idx.ids) }

// EdgeCount returns the number of source edges.
func (w *Weighted) EdgeCount() int { return w.edges }

// Vertices returns all vertices in first-seen order. The slice is a copy.
func (w *Weighted) Vertices() []Vertex { return w.idx.vertices() }

// Has reports whether v is a vertex of the graph.
func (w *Weighted) Has(v Vertex) bool {
	_, ok := w.idx.slot[v]
	return ok
}

// Slot returns the dense slot of v.
func (w *Weighted) Slot(v Vertex) (int, bool) { return w.idx.lookup(v) }

// ID returns the vertex stored at slot s.
func (w *Weighted) ID(s int) Vertex { return w.idx.ids[s] }

// ArcsOf returns the arcs of slot s. The slice aliases the arena.
func (w *Weighted) ArcsOf(s int) []Arc { return w.arcs[s] }

// Neighbors returns v's weighted neighbors in insertion order.
func (w *Weighted) Neighbors(v Vertex) []WeightedNeighbor {
	s, ok := w.idx.lookup(v)
	if !ok {
		return nil
	}
	out := make([]WeightedNeighbor, len(w.arcs[s]))
	for i, arc := range w.arcs[s] {
		out[i] = WeightedNeighbor{Vertex: w.idx.ids[arc.To], Weight: arc.Weight}
	}
	return out
}

// NewDistances allocates a table sized for w, with every entry at Infinity.
func (w *Weighted) NewDistances() *Distances { return newDistances(w.idx) }
