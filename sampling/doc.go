// Package sampling drives a single-source shortest-path engine over a random
// subset of vertices and collects one DistancePair per unordered pair of the
// subset.
//
// Run:
//
//  1. Reject k > |V| (ErrOversizedSample) and k < 0 (ErrBadSampleSize).
//  2. Shuffle a copy of the vertex list uniformly (Fisher–Yates) and keep the
//     first k vertices, in shuffle order.
//  3. For each i, run the engine once from sample[i] and emit
//     (sample[i], sample[j], dist[sample[j]]) for every j > i.
//
// Exactly k(k-1)/2 pairs are produced, ordered by (i, j); Node1 always
// precedes Node2 in sample order. Each source runs a full traversal.
//
// Randomness is explicit: WithRand or WithSeed supplies the *rand.Rand.
// With neither, a fixed default seed is used, so runs are reproducible.
//
// Concurrency: WithWorkers(n) spreads sources over n goroutines through
// errgroup. Adjacency arenas are read-only and each run owns its table, so
// the output is identical to a sequential run with the same seed.
package sampling
