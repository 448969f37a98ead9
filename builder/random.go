// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// random.go — stochastic generators (RandomSparse, Weigh).
//
// Determinism:
//   - Trial order is fixed: for i asc, j asc with j>i.
//   - One RNG draw per trial, so equal seeds give equal edge lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/degrees/core"
)

const (
	methodRandomSparse = "RandomSparse"
	methodWeigh        = "Weigh"

	minRandomSparseNodes = 1
	probMin              = 0.0
	probMax              = 1.0
)

// RandomSparse samples an Erdős–Rényi-like graph over n vertices: each
// unordered pair {i,j} is kept independently with probability p.
// Vertices that end up with no edge do not appear in the edge list.
//
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, opts ...Option) ([]core.Edge, error) {
	if n < minRandomSparseNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}

	c := newConfig(opts)
	var edges []core.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if c.rng.Float64() < p {
				edges = append(edges, core.Edge{From: c.id(i), To: c.id(j)})
			}
		}
	}
	return edges, nil
}

// Weigh attaches a uniform random weight in [lo,hi] to every edge.
func Weigh(edges []core.Edge, lo, hi uint32, opts ...Option) ([]core.WeightedEdge, error) {
	if lo > hi {
		return nil, fmt.Errorf("%s: lo=%d > hi=%d: %w", methodWeigh, lo, hi, ErrInvalidWeightRange)
	}
	c := newConfig(opts)
	span := int64(hi) - int64(lo) + 1
	out := make([]core.WeightedEdge, len(edges))
	for i, e := range edges {
		out[i] = core.WeightedEdge{
			From:   e.From,
			To:     e.To,
			Weight: lo + uint32(c.rng.Int63n(span)),
		}
	}
	return out, nil
}
