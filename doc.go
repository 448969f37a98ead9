// Package degrees measures degrees of separation in undirected social graphs
// by sampling vertex pairs and computing their shortest-path distances.
//
// Two independent engines answer the same question:
//
//	bfs/       — unweighted hop distances (FIFO frontier)
//	dijkstra/  — weighted distances (min-heap, lazy decrease-key)
//
// and they are driven by:
//
//	core/      — Vertex, Edge, adjacency arenas and distance tables
//	sampling/  — uniform vertex sampling and pairwise DistancePair collection
//	stats/     — count, mean and population standard deviation
//	builder/   — deterministic synthetic edge lists
//	edgelist/  — delimited edge-list reader (.csv, .gz, .zst)
//	report/    — report files and console summaries
//	config/    — TOML configuration, .env loading, rotating logs
//	cmd/degrees — the command-line driver
//
// Quick ASCII example:
//
//	1 ─── 2 ─── 3
//	 \    |    /
//	   \  |  /
//	     4
//
// Sampling all four vertices yields six pairs with a mean distance of 7/6.
package degrees
