// Package core defines the Vertex, Edge and adjacency types shared by the
// shortest-path engines, and the builders that turn a flat edge list into
// an immutable adjacency arena.
//
// Layout
//
//	Every distinct vertex id is interned once into a dense slot (0..V-1) in
//	first-seen order. Neighbor lists are stored per slot, so the inner loops
//	of BFS and Dijkstra index slices instead of hashing vertex ids:
//
//	    ids   [ 7, 3, 9 ]            slot → Vertex
//	    nbrs  [ [1,2], [0], [0] ]    slot → neighbor slots
//
// Semantics
//
//   - Edges are undirected: (a,b) appends b to a and a to b.
//   - Self-loops and parallel edges are kept as given; nothing is deduplicated.
//   - Neighbor order equals insertion order.
//   - A Weighted arena derived with BuildWeighted shares the slot index of its
//     source Adjacency and assigns weight 1 to every entry.
//   - Both arenas are read-only after construction and may be shared across
//     goroutines without locking.
//
// Distances
//
//	A Distances table is produced by one single-source computation and owned
//	by its caller. Unreachable vertices hold Infinity.
//
// Complexity (V = |vertices|, E = |edges|)
//
//   - Build:         O(V + E) time and memory.
//   - BuildWeighted: O(V + E).
//   - Neighbors:     O(deg(v)) (allocates a Vertex slice).
package core
