// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// topology.go — fixed topologies (Path, Cycle, Star, Complete).
//
// Contract:
//   - Validate n first; return ErrTooFewVertices wrapped with method context.
//   - Emit edges in a stable order so core.Build yields stable neighbor lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minCompleteNodes = 1
)

// Path returns the edges of P_n: (i-1, i) for i = 1..n-1.
func Path(n int, opts ...Option) ([]core.Edge, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
	}
	c := newConfig(opts)
	edges := make([]core.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{From: c.id(i - 1), To: c.id(i)})
	}
	return edges, nil
}

// Cycle returns the edges of C_n: Path(n) closed by (n-1, 0).
func Cycle(n int, opts ...Option) ([]core.Edge, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	edges, err := Path(n, opts...)
	if err != nil {
		return nil, err
	}
	c := newConfig(opts)
	return append(edges, core.Edge{From: c.id(n - 1), To: c.id(0)}), nil
}

// Star returns the edges of S_n with center 0 and leaves 1..n-1.
func Star(n int, opts ...Option) ([]core.Edge, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}
	c := newConfig(opts)
	edges := make([]core.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, core.Edge{From: c.id(0), To: c.id(i)})
	}
	return edges, nil
}

// Complete returns the edges of K_n, one per unordered pair {i,j} with i<j.
// K_1 has no edges; use core.WithVertices to keep its single vertex.
func Complete(n int, opts ...Option) ([]core.Edge, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	c := newConfig(opts)
	edges := make([]core.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, core.Edge{From: c.id(i), To: c.id(j)})
		}
	}
	return edges, nil
}
