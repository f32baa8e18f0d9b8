package aco

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// State is the lifecycle stage of an Agent.
type State int

const (
	// Walking agents still have steps to take.
	Walking State = iota
	// Fit agents stand on the target and may reinforce their path.
	Fit
	// Stuck agents ran out of unvisited neighbors and never move again.
	Stuck
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Walking:
		return "walking"
	case Fit:
		return "fit"
	case Stuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Agent is a single walker on a Graph. It never revisits a node it has
// stepped through.
type Agent struct {
	g      *Graph
	rng    Random
	alpha  float64
	beta   float64
	source int
	target int

	solution bool
	state    State
	current  int
	visited  map[int]struct{}
	path     []int
	cost     float64

	// scratch buffers reused across steps
	candidates []int
	weights    []float64
	cumulative []float64
}

// NewAgent returns an exploring agent standing on source. Exploring agents
// choose their next node by roulette-wheel selection using rng.
func NewAgent(g *Graph, source, target int, alpha, beta float64, rng Random) *Agent {
	a := &Agent{
		g:       g,
		rng:     rng,
		alpha:   alpha,
		beta:    beta,
		source:  source,
		target:  target,
		current: source,
		visited: make(map[int]struct{}),
		path:    []int{source},
	}
	if source == target {
		a.state = Fit
	}

	return a
}

// NewSolutionAgent returns the greedy agent that follows the strongest
// pheromone (pheromone^alpha only, distance ignored).
func NewSolutionAgent(g *Graph, source, target int, alpha float64) *Agent {
	a := NewAgent(g, source, target, alpha, 0, nil)
	a.solution = true

	return a
}

// State returns the agent's lifecycle stage.
func (a *Agent) State() State { return a.state }

// Current returns the node the agent stands on.
func (a *Agent) Current() int { return a.current }

// Path returns the walk so far, starting at the source. Callers must not modify it.
func (a *Agent) Path() []int { return a.path }

// Cost returns the summed distance of the walk so far.
func (a *Agent) Cost() float64 { return a.cost }

// Reached reports whether the agent stands on its target.
func (a *Agent) Reached() bool { return a.current == a.target }

// IsSolution reports whether this is the greedy solution agent.
func (a *Agent) IsSolution() bool { return a.solution }

// Step moves the agent by one edge. Fit and stuck agents do not move.
func (a *Agent) Step() error {
	if a.state != Walking {
		return nil
	}
	a.visited[a.current] = struct{}{}

	neighbors, err := a.g.Neighbors(a.current)
	if err != nil {
		return err
	}
	a.candidates = a.candidates[:0]
	for _, n := range neighbors {
		if _, seen := a.visited[n]; !seen {
			a.candidates = append(a.candidates, n)
		}
	}
	if len(a.candidates) == 0 {
		a.state = Stuck
		return nil
	}

	var next int
	if a.solution {
		next, err = a.chooseBest()
	} else {
		next, err = a.chooseByProbability()
	}
	if err != nil {
		return err
	}

	d, err := a.g.Distance(a.current, next)
	if err != nil {
		return err
	}
	a.path = append(a.path, next)
	a.cost += d
	a.current = next
	if a.current == a.target {
		a.state = Fit
	}

	return nil
}

// chooseBest returns the candidate with the highest pheromone^alpha.
// Ties go to the earliest candidate.
func (a *Agent) chooseBest() (int, error) {
	a.weights = a.weights[:0]
	for _, n := range a.candidates {
		p, err := a.g.Pheromone(a.current, n)
		if err != nil {
			return 0, err
		}
		a.weights = append(a.weights, math.Pow(p, a.alpha))
	}

	return a.candidates[floats.MaxIdx(a.weights)], nil
}

// chooseByProbability draws one uniform r and returns the first candidate whose
// normalized prefix weight reaches r. The last candidate is the fallback when
// rounding keeps every prefix below r.
func (a *Agent) chooseByProbability() (int, error) {
	a.weights = a.weights[:0]
	for _, n := range a.candidates {
		d, p, err := a.g.Edge(a.current, n)
		if err != nil {
			return 0, err
		}
		a.weights = append(a.weights, math.Pow(p, a.alpha)+math.Pow(1/d, a.beta))
	}
	a.cumulative = slicesGrow(a.cumulative, len(a.weights))
	floats.CumSum(a.cumulative, a.weights)
	total := a.cumulative[len(a.cumulative)-1]

	r := a.rng.Float64()
	for i, c := range a.cumulative {
		if c/total >= r {
			return a.candidates[i], nil
		}
	}

	return a.candidates[len(a.candidates)-1], nil
}

// Deposit reinforces every edge of a fit agent's path with 1/cost.
// Agents that are not fit, or whose path has no edge, deposit nothing.
func (a *Agent) Deposit() error {
	if a.state != Fit || len(a.path) < 2 {
		return nil
	}
	amount := 1 / a.cost
	for i := 0; i+1 < len(a.path); i++ {
		if err := a.g.DepositPheromone(a.path[i], a.path[i+1], amount); err != nil {
			return err
		}
	}

	return nil
}

// slicesGrow returns buf resliced to n, reallocating only when too small.
func slicesGrow(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}

	return buf[:n]
}
