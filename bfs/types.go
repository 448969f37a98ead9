package bfs

import (
	"errors"

	"github.com/katalvlaran/degrees/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil adjacency pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks that observe a BFS run.
type Options struct {
	// OnEnqueue is called each time a vertex is enqueued, with its new distance.
	OnEnqueue func(v core.Vertex, d core.Distance)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(core.Vertex, core.Distance) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(v core.Vertex, d core.Distance)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}
