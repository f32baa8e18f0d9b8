package aco

import (
	"fmt"
	"math"
	"slices"
)

// Edge is a directed connection with a fixed distance and a mutable pheromone level.
type Edge struct {
	From      int
	To        int
	Distance  float64
	Pheromone float64
}

// GraphOption configures a Graph before any edge is added.
type GraphOption func(g *Graph)

// WithEvaporation sets the fraction discounted from every deposit.
func WithEvaporation(rate float64) GraphOption {
	return func(g *Graph) { g.evaporation = rate }
}

// WithInitialPheromone sets the level every edge starts with.
func WithInitialPheromone(p float64) GraphOption {
	return func(g *Graph) { g.initialPheromone = p }
}

// Graph is a directed weighted graph carrying pheromone on its edges.
//
// adjacency[from][to] points at the edge; targets[from] keeps the same keys
// sorted ascending so that neighbor iteration is deterministic.
type Graph struct {
	evaporation      float64
	initialPheromone float64

	adjacency map[int]map[int]*Edge
	targets   map[int][]int
	edges     int
}

// NewGraph creates an empty graph. Defaults: evaporation 0.1, initial pheromone 1.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		evaporation:      DefaultEvaporation,
		initialPheromone: DefaultInitialPheromone,
		adjacency:        make(map[int]map[int]*Edge),
		targets:          make(map[int][]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Evaporation returns the deposit discount rate.
func (g *Graph) Evaporation() float64 { return g.evaporation }

// InitialPheromone returns the level edges start with.
func (g *Graph) InitialPheromone() float64 { return g.initialPheromone }

// AddNode registers id. Adding a known node is a no-op.
func (g *Graph) AddNode(id int) {
	if _, ok := g.adjacency[id]; ok {
		return
	}
	g.adjacency[id] = make(map[int]*Edge)
}

// HasNode reports whether id is known.
func (g *Graph) HasNode(id int) bool {
	_, ok := g.adjacency[id]
	return ok
}

// Nodes returns all known node ids in ascending order.
func (g *Graph) Nodes() []int {
	ids := make([]int, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Len returns the number of known nodes.
func (g *Graph) Len() int { return len(g.adjacency) }

// EdgeCount returns the number of directed edges.
func (g *Graph) EdgeCount() int { return g.edges }

// AddEdge adds the directed edge from→to, registering both endpoints.
// The edge starts at the graph's initial pheromone.
//
// Errors: ErrLoopNotAllowed, ErrDuplicateEdge, ErrBadDistance.
func (g *Graph) AddEdge(from, to int, distance float64) error {
	if from == to {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, from)
	}
	if math.IsNaN(distance) || math.IsInf(distance, 0) || distance <= 0 {
		return fmt.Errorf("%w: %d→%d distance=%v", ErrBadDistance, from, to, distance)
	}
	g.AddNode(from)
	g.AddNode(to)
	if _, dup := g.adjacency[from][to]; dup {
		return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, from, to)
	}

	g.adjacency[from][to] = &Edge{
		From:      from,
		To:        to,
		Distance:  distance,
		Pheromone: g.initialPheromone,
	}
	ts := g.targets[from]
	i, _ := slices.BinarySearch(ts, to)
	g.targets[from] = slices.Insert(ts, i, to)
	g.edges++

	return nil
}

// Neighbors returns the targets of from's outgoing edges in ascending order.
// The returned slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(node int) ([]int, error) {
	if _, ok := g.adjacency[node]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNode, node)
	}

	return g.targets[node], nil
}

func (g *Graph) edge(from, to int) (*Edge, error) {
	if e, ok := g.adjacency[from][to]; ok {
		return e, nil
	}

	return nil, fmt.Errorf("%w: %d→%d", ErrInvalidEdge, from, to)
}

// Edge returns the distance and pheromone of from→to.
func (g *Graph) Edge(from, to int) (distance, pheromone float64, err error) {
	e, err := g.edge(from, to)
	if err != nil {
		return 0, 0, err
	}

	return e.Distance, e.Pheromone, nil
}

// Distance returns the distance of from→to.
func (g *Graph) Distance(from, to int) (float64, error) {
	d, _, err := g.Edge(from, to)
	return d, err
}

// Pheromone returns the pheromone level of from→to.
func (g *Graph) Pheromone(from, to int) (float64, error) {
	_, p, err := g.Edge(from, to)
	return p, err
}

// SetPheromone overwrites the pheromone level of from→to.
func (g *Graph) SetPheromone(from, to int, p float64) error {
	e, err := g.edge(from, to)
	if err != nil {
		return err
	}
	if p < 0 || math.IsNaN(p) {
		return fmt.Errorf("%w: %d→%d p=%v", ErrNegativePheromone, from, to, p)
	}
	e.Pheromone = p

	return nil
}

// DepositPheromone adds (1-evaporation)*amount to from→to.
//
// Evaporation only discounts the deposit; no decay pass exists anywhere, so
// with non-negative amounts pheromone never decreases. The level is clamped
// at zero.
func (g *Graph) DepositPheromone(from, to int, amount float64) error {
	e, err := g.edge(from, to)
	if err != nil {
		return err
	}
	e.Pheromone += (1 - g.evaporation) * amount
	if e.Pheromone < 0 {
		e.Pheromone = 0
	}

	return nil
}

// ResetPheromones sets every edge back to the initial pheromone level.
func (g *Graph) ResetPheromones() {
	for _, out := range g.adjacency {
		for _, e := range out {
			e.Pheromone = g.initialPheromone
		}
	}
}

// Edges returns copies of all edges ordered by (From, To).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edges)
	for _, from := range g.Nodes() {
		for _, to := range g.targets[from] {
			out = append(out, *g.adjacency[from][to])
		}
	}

	return out
}
