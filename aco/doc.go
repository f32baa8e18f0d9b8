// Package aco implements an ant-colony style path search over a directed,
// weighted graph.
//
// Overview:
//
//   - Graph holds, per directed edge, an immutable distance and a mutable
//     pheromone level. All edges start at the graph's initial pheromone.
//   - Agent is a random walker. Exploring agents pick the next node by
//     roulette-wheel selection over pheromone^alpha + (1/distance)^beta;
//     the single solution agent greedily follows the highest pheromone^alpha.
//   - Run/FindPath repeat exploration rounds, let every agent that reached the
//     target reinforce its path with 1/cost, then deploy the solution agent
//     and return its walk.
//
// Heuristic choices kept on purpose:
//
//   - Evaporation is applied only at deposit time, as a discount of the
//     deposited amount: pheromone += (1-evaporation)*amount. There is no global
//     decay pass, so pheromone never decreases during a search.
//   - The solution agent ignores distance entirely.
//   - Every fit agent reinforces equally, not only the best of the round.
//
// Result contract:
//
//   - FindPath never fails because the target is unreachable. The returned
//     path may stop short of the target; compare its last element with the
//     target id (or use Result.Reached).
//   - Unknown source or target ids return ErrInvalidNode.
//
// Determinism:
//
//   - Randomness comes from Options.Rand when set, otherwise from a stream
//     seeded by Options.Seed (seed 0 selects a fixed default seed). Same graph,
//     same options and same seed give the same path.
//
// Thread safety:
//
//   - Graph and Agent are not safe for concurrent use. A search owns its graph
//     for its whole duration and runs synchronously on the calling goroutine.
//
// Example:
//
//	g := aco.NewGraph()
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 1)
//	path, err := aco.FindPath(g, 0, 2, aco.WithIterations(20), aco.WithSeed(7))
package aco
