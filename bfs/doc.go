// Package bfs computes unweighted shortest hop distances from a start vertex
// to every vertex of a core.Adjacency.
//
// What
//
//   - Initializes every distance to core.Infinity and the start to 0.
//   - Expands a FIFO frontier seeded with the start vertex.
//   - Relaxes each neighbor v of u with dist[u]+1 < dist[v]; on success the
//     neighbor's distance is updated and it is enqueued.
//   - Stops when the queue is empty and returns the complete table.
//
// With unit edges the relaxation only ever succeeds the first time a vertex
// is reached, so every vertex is enqueued at most once. The check is still a
// relaxation, not a visited flag.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and the distance table.
//
// Usage
//
//	a := core.Build(edges)
//	dist, err := bfs.BFS(a, 42)
//	if err != nil {
//	    // ErrGraphNil or ErrStartVertexNotFound
//	}
//	fmt.Println(dist.To(7))
//
// Options
//
//   - WithOnEnqueue(fn): hook called with each vertex and its distance on enqueue.
package bfs
