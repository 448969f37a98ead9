// SPDX-License-Identifier: MIT
// Package: degrees/builder
//
// Package builder generates deterministic edge lists for tests, benchmarks and
// the synthetic mode of the degrees CLI.
//
// Every generator returns a plain []core.Edge (or []core.WeightedEdge), so its
// output flows through core.Build exactly like an edge list read from disk.
//
// Topologies:
//
//	Path(n)             0─1─2─…─(n-1)
//	Cycle(n)            Path(n) plus (n-1)─0
//	Star(n)             0 connected to 1..n-1
//	Complete(n)         every unordered pair {i,j}, i<j
//	RandomSparse(n,p)   each unordered pair kept with probability p
//	Weigh(edges,lo,hi)  attaches uniform weights in [lo,hi]
//
// Determinism:
//   - Vertex ids are offset+i (WithOffset), emitted in ascending i.
//   - Stochastic generators draw from the RNG of WithSeed/WithRand only;
//     with neither, a fixed default seed is used.
package builder
