package core

import (
	"errors"
	"math"
)

// Sentinel errors for core lookups.
var (
	// ErrVertexNotFound indicates a lookup referenced a vertex that is not in the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Vertex identifies a node of the social graph.
type Vertex uint32

// Distance is a shortest-path length measured in hops or summed weights.
type Distance uint32

// Infinity marks a vertex that is unreachable from the source.
// No relaxation ever lowers a distance to or below it from above.
const Infinity Distance = math.MaxUint32

// Edge is an undirected connection between From and To as read from input.
type Edge struct {
	From Vertex
	To   Vertex
}

// WeightedEdge is an undirected connection with a non-negative integer weight.
type WeightedEdge struct {
	From   Vertex
	To     Vertex
	Weight uint32
}

// Arc is one weighted neighbor entry in slot space.
type Arc struct {
	// To is the neighbor's slot.
	To int32

	// Weight is the cost of traversing the entry.
	Weight uint32
}

// WeightedNeighbor is an Arc resolved back to vertex ids.
type WeightedNeighbor struct {
	Vertex Vertex
	Weight uint32
}

// Option configures a builder before any edge is inserted.
type Option func(*buildOptions)

type buildOptions struct {
	vertices []Vertex
	capacity int
}

// WithVertices registers vertices up front, in the given order, before any
// edge endpoint. Vertices that never appear in an edge become isolated.
func WithVertices(vs ...Vertex) Option {
	return func(o *buildOptions) {
		o.vertices = append(o.vertices, vs...)
	}
}

// WithCapacity pre-sizes the slot index for n vertices.
// Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(o *buildOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

func resolve(opts []Option) buildOptions {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity < len(o.vertices) {
		o.capacity = len(o.vertices)
	}
	return o
}

// index interns vertex ids into dense slots.
type index struct {
	ids  []Vertex
	slot map[Vertex]int32
}

func newIndex(capacity int) *index {
	return &index{
		ids:  make([]Vertex, 0, capacity),
		slot: make(map[Vertex]int32, capacity),
	}
}

// intern returns v's slot, allocating the next one on first sight.
func (x *index) intern(v Vertex) (int32, bool) {
	if s, ok := x.slot[v]; ok {
		return s, false
	}
	s := int32(len(x.ids))
	x.ids = append(x.ids, v)
	x.slot[v] = s
	return s, true
}

func (x *index) lookup(v Vertex) (int, bool) {
	s, ok := x.slot[v]
	return int(s), ok
}

func (x *index) vertices() []Vertex {
	out := make([]Vertex, len(x.ids))
	copy(out, x.ids)
	return out
}
