// Package dijkstra computes exact shortest paths on an aco.Graph.
//
// The swarm search in package aco is a heuristic; this package gives the
// optimum it can be measured against. Edge weights are the immutable edge
// distances; pheromone is ignored.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy decrease-key binary heap.
//   - Space: O(V + E).
//
// Ties between equal distances are broken by ascending node id, so results
// are deterministic.
//
// Example:
//
//	p, err := dijkstra.ShortestPath(g, 1, 3)
//	if errors.Is(err, dijkstra.ErrUnreachable) {
//		// no route
//	}
//	fmt.Println(p.Nodes, p.Cost)
package dijkstra
