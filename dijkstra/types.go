package dijkstra

import (
	"errors"

	"github.com/katalvlaran/degrees/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Weighted was passed to Dijkstra.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist
	// in the provided graph.
	ErrStartVertexNotFound = errors.New("dijkstra: start vertex not found in graph")
)

// Options configures the observation hooks of a Dijkstra run.
//
// OnSettle – called when an entry is popped with its current best cost.
// OnStale  – called when a popped entry is discarded as superseded.
type Options struct {
	OnSettle func(v core.Vertex, cost core.Distance)
	OnStale  func(v core.Vertex, cost core.Distance)
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnSettle: func(core.Vertex, core.Distance) {},
		OnStale:  func(core.Vertex, core.Distance) {},
	}
}

// WithOnSettle registers a hook for entries that are expanded.
func WithOnSettle(fn func(v core.Vertex, cost core.Distance)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnStale registers a hook for entries discarded as stale.
func WithOnStale(fn func(v core.Vertex, cost core.Distance)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStale = fn
		}
	}
}
