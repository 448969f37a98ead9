package core

// Distances is the per-source distance table produced by one BFS or
// Dijkstra run. Entries are stored per slot.
type Distances struct {
	idx  *index
	dist []Distance
}

func newDistances(idx *index) *Distances {
	d := &Distances{idx: idx, dist: make([]Distance, len(idx.ids))}
	for i := range d.dist {
		d.dist[i] = Infinity
	}
	return d
}

// Len returns the number of vertices covered by the table.
func (d *Distances) Len() int { return len(d.dist) }

// To returns the recorded distance to v. Vertices outside the graph are
// reported as Infinity.
func (d *Distances) To(v Vertex) Distance {
	s, ok := d.idx.slot[v]
	if !ok {
		return Infinity
	}
	return d.dist[s]
}

// Reachable reports whether v has a finite distance.
func (d *Distances) Reachable(v Vertex) bool { return d.To(v) != Infinity }

// At returns the distance stored at slot s.
func (d *Distances) At(s int) Distance { return d.dist[s] }

// Set stores dist at slot s. Only the engine that owns the table calls it.
func (d *Distances) Set(s int, dist Distance) { d.dist[s] = dist }

// Map materializes the table keyed by vertex id.
func (d *Distances) Map() map[Vertex]Distance {
	out := make(map[Vertex]Distance, len(d.dist))
	for s, dist := range d.dist {
		out[d.idx.ids[s]] = dist
	}
	return out
}
