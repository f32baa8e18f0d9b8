package aco

import (
	"fmt"

	"github.com/katalvlaran/swarmlab/internal/rng"
)

// FindPath runs the search and returns the solution agent's path verbatim.
// The path may end before target; see Run for a result that says so.
func FindPath(g *Graph, source, target int, opts ...Option) ([]int, error) {
	res, err := Run(g, source, target, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// FindPathWithParams is RunWithParams returning only the path.
func FindPathWithParams(g *Graph, source, target int, p Params, opts ...Option) ([]int, error) {
	res, err := RunWithParams(g, source, target, p, opts...)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// RunWithParams applies p.EvaporationRate and p.InitialPheromone to g,
// resets every edge to the initial level, and runs the search with the
// remaining parameters. Extra options are applied after p.
// g is left untouched when source or target is unknown.
func RunWithParams(g *Graph, source, target int, p Params, opts ...Option) (Result, error) {
	if err := validateEndpoints(g, source, target); err != nil {
		return Result{}, err
	}
	g.evaporation = p.EvaporationRate
	g.initialPheromone = p.InitialPheromone
	g.ResetPheromones()

	all := make([]Option, 0, len(opts)+5)
	all = append(all,
		WithIterations(p.Iterations),
		WithAgents(p.AgentsPerRound),
		WithMaxSteps(p.MaxSteps),
		WithAlpha(p.Alpha),
		WithBeta(p.Beta),
	)
	all = append(all, opts...)

	return Run(g, source, target, all...)
}

// Run performs Iterations exploration rounds on g and then walks the greedy
// solution agent from source towards target.
//
// Each round spawns Agents fresh agents; each takes up to MaxSteps steps or
// stops once fit. Every fit agent then deposits 1/cost on its path. After the
// last round (or when OnRound returns false) the solution agent walks at most
// MaxSteps*10 steps following pheromone alone.
//
// Errors: ErrNilGraph, ErrInvalidNode for an unknown source or target.
// An unreachable target is not an error; Result.Reached is false.
//
// Complexity: O(Iterations·Agents·MaxSteps·deg) time, O(Agents·MaxSteps) space.
func Run(g *Graph, source, target int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := validateEndpoints(g, source, target); err != nil {
		return Result{}, err
	}

	rnd := rng.Resolve(cfg.Rand, cfg.Seed)
	var res Result
	agents := make([]*Agent, cfg.Agents)
	for round := 0; round < cfg.Iterations; round++ {
		for i := range agents {
			agents[i] = NewAgent(g, source, target, cfg.Alpha, cfg.Beta, rnd)
		}
		if err := forward(agents, cfg.MaxSteps); err != nil {
			return Result{}, err
		}
		stats, err := reinforce(agents)
		if err != nil {
			return Result{}, err
		}
		res.Rounds++
		res.FitAgents += stats.Fit

		if cfg.OnRound != nil {
			stats.Round = round
			stats.TotalFit = res.FitAgents
			stats.Remaining = cfg.Iterations - round - 1
			if !cfg.OnRound(stats) {
				break
			}
		}
	}

	sol, err := deploySolution(g, source, target, cfg)
	if err != nil {
		return Result{}, err
	}
	res.Path = append([]int(nil), sol.Path()...)
	res.Cost = sol.Cost()
	res.Reached = sol.Reached()

	return res, nil
}

// forward lets every agent walk until fit, stuck, or out of steps.
func forward(agents []*Agent, maxSteps int) error {
	for _, a := range agents {
		for step := 0; step < maxSteps && a.State() == Walking; step++ {
			if err := a.Step(); err != nil {
				return err
			}
		}
	}

	return nil
}

// reinforce has every fit agent deposit on its path and reports round stats.
func reinforce(agents []*Agent) (RoundStats, error) {
	stats := RoundStats{Agents: len(agents)}
	for _, a := range agents {
		switch a.State() {
		case Stuck:
			stats.Stuck++
		case Fit:
			stats.Fit++
			if len(a.Path()) > 1 && (stats.BestCost == 0 || a.Cost() < stats.BestCost) {
				stats.BestCost = a.Cost()
			}
			if err := a.Deposit(); err != nil {
				return stats, err
			}
		}
	}

	return stats, nil
}

func validateEndpoints(g *Graph, source, target int) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasNode(source) {
		return fmt.Errorf("%w: source %d", ErrInvalidNode, source)
	}
	if !g.HasNode(target) {
		return fmt.Errorf("%w: target %d", ErrInvalidNode, target)
	}

	return nil
}

func deploySolution(g *Graph, source, target int, cfg Options) (*Agent, error) {
	a := NewSolutionAgent(g, source, target, cfg.Alpha)
	limit := cfg.MaxSteps * solutionStepFactor
	for step := 0; step < limit && a.State() == Walking; step++ {
		if err := a.Step(); err != nil {
			return nil, err
		}
	}

	return a, nil
}
