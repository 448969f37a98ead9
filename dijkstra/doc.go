// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// over a core.Weighted adjacency arena with non-negative integer weights.
//
// Algorithm:
//
//   - dist[v] = core.Infinity for every v; dist[start] = 0.
//   - A min-heap keyed by cost is seeded with (start, 0).
//   - Pop (u, cost). If cost > dist[u] the entry is stale and is discarded.
//   - Otherwise, for every arc (v, w) of u: if cost+w < dist[v], set
//     dist[v] = cost+w and push (v, cost+w).
//   - Stop when the heap is empty.
//
// The heap has no decrease-key. A cheaper path to v is pushed as a new entry
// and the older, more expensive entry is dropped when it surfaces
// ("lazy decrease-key").
//
// Ties between equal costs pop in heap order; the final table does not depend
// on it. A candidate cost at or above core.Infinity never relaxes. Negative
// weights are unrepresentable (weights are uint32).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); up to E entries may sit in the heap.
//
// Example usage:
//
//	w := core.BuildWeighted(core.Build(edges))
//	dist, err := dijkstra.Dijkstra(w, 42)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist.To(7))
package dijkstra
