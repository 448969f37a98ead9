package core

// Adjacency is the unweighted adjacency arena: for every edge (a,b) the
// neighbor list of a holds b and the neighbor list of b holds a.
type Adjacency struct {
	idx   *index
	nbrs  [][]int32
	edges int
}

// Build converts a flat edge list into an Adjacency.
//
// Steps:
//  1. Intern vertices passed via WithVertices, in order.
//  2. For each edge (a,b): intern a and b, append b to a and a to b.
//
// Duplicate edges and self-loops are not rejected; a self-loop (a,a)
// contributes two entries of a to its own list.
//
// Complexity: O(V + E).
func Build(edges []Edge, opts ...Option) *Adjacency {
	o := resolve(opts)
	a := &Adjacency{
		idx:   newIndex(o.capacity),
		nbrs:  make([][]int32, 0, o.capacity),
		edges: len(edges),
	}
	for _, v := range o.vertices {
		a.add(v)
	}

	var s, t int32
	for _, e := range edges {
		s = a.add(e.From)
		t = a.add(e.To)
		a.nbrs[s] = append(a.nbrs[s], t)
		a.nbrs[t] = append(a.nbrs[t], s)
	}
	return a
}

// add interns v and grows the arena when v is new.
func (a *Adjacency) add(v Vertex) int32 {
	s, fresh := a.idx.intern(v)
	if fresh {
		a.nbrs = append(a.nbrs, nil)
	}
	return s
}

// Len returns the number of distinct vertices.
func (a *Adjacency) Len() int { return len(a.idx.ids) }

// EdgeCount returns the number of edges the arena was built from,
// including duplicates and self-loops.
func (a *Adjacency) EdgeCount() int { return a.edges }

// Vertices returns all vertices in first-seen order. The slice is a copy.
func (a *Adjacency) Vertices() []Vertex { return a.idx.vertices() }

// Has reports whether v is a vertex of the graph.
func (a *Adjacency) Has(v Vertex) bool {
	_, ok := a.idx.slot[v]
	return ok
}

// Slot returns the dense slot of v.
func (a *Adjacency) Slot(v Vertex) (int, bool) { return a.idx.lookup(v) }

// ID returns the vertex stored at slot s.
func (a *Adjacency) ID(s int) Vertex { return a.idx.ids[s] }

// NeighborSlots returns the neighbor slots of slot s in insertion order.
// The returned slice aliases the arena and must not be modified.
func (a *Adjacency) NeighborSlots(s int) []int32 { return a.nbrs[s] }

// Neighbors returns v's neighbors in insertion order.
// An unknown vertex has no neighbors.
func (a *Adjacency) Neighbors(v Vertex) []Vertex {
	s, ok := a.idx.lookup(v)
	if !ok {
		return nil
	}
	out := make([]Vertex, len(a.nbrs[s]))
	for i, t := range a.nbrs[s] {
		out[i] = a.idx.ids[t]
	}
	return out
}

// Degree returns the length of v's neighbor list, or 0 for an unknown vertex.
func (a *Adjacency) Degree(v Vertex) int {
	s, ok := a.idx.lookup(v)
	if !ok {
		return 0
	}
	return len(a.nbrs[s])
}

// NewDistances allocates a table sized for a, with every entry at Infinity.
func (a *Adjacency) NewDistances() *Distances { return newDistances(a.idx) }
