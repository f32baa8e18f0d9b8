package aco

import (
	"errors"

	"github.com/katalvlaran/swarmlab/internal/rng"
)

// Sentinel errors returned by the aco package.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to a search.
	ErrNilGraph = errors.New("aco: graph is nil")

	// ErrInvalidNode indicates an operation referenced a node the graph does not know.
	ErrInvalidNode = errors.New("aco: invalid node")

	// ErrInvalidEdge indicates there is no edge between the given pair of nodes.
	ErrInvalidEdge = errors.New("aco: invalid edge")

	// ErrLoopNotAllowed indicates an attempt to add an edge from a node to itself.
	ErrLoopNotAllowed = errors.New("aco: self-loop not allowed")

	// ErrDuplicateEdge indicates an attempt to add a second edge for the same ordered pair.
	ErrDuplicateEdge = errors.New("aco: duplicate edge")

	// ErrBadDistance indicates a distance that is not a positive finite number.
	ErrBadDistance = errors.New("aco: distance must be positive")

	// ErrNegativePheromone indicates an attempt to set a negative pheromone level.
	ErrNegativePheromone = errors.New("aco: pheromone must be non-negative")
)

// Default parameter values.
const (
	DefaultIterations       = 100
	DefaultAgents           = 100
	DefaultMaxSteps         = 100
	DefaultAlpha            = 0.7
	DefaultBeta             = 0.3
	DefaultEvaporation      = 0.1
	DefaultInitialPheromone = 1.0

	// solutionStepFactor bounds the solution agent's walk to MaxSteps*solutionStepFactor.
	solutionStepFactor = 10
)

// Random is the source of uniform draws in [0,1) used by exploring agents.
// *math/rand.Rand satisfies it.
type Random = rng.Random

// RoundStats summarizes one finished exploration round.
type RoundStats struct {
	Round     int     // zero-based round index
	Agents    int     // agents spawned this round
	Fit       int     // agents that reached the target
	Stuck     int     // agents left without unvisited neighbors
	BestCost  float64 // cheapest fit path this round (0 if none)
	TotalFit  int     // fit agents across all rounds so far
	Remaining int     // rounds left after this one
}

// Options configures a path search.
//
// Iterations – number of exploration rounds.
// Agents     – agents spawned per round.
// MaxSteps   – step budget of an exploring agent; the solution agent gets MaxSteps*10.
// Alpha      – pheromone exponent.
// Beta       – inverse-distance exponent (exploration only).
// Seed       – seed for the default random stream (0 ⇒ fixed default seed).
// Rand       – explicit random source; overrides Seed when non-nil.
// OnRound    – optional callback after each round; returning false stops the search early.
type Options struct {
	Iterations int
	Agents     int
	MaxSteps   int
	Alpha      float64
	Beta       float64
	Seed       int64
	Rand       Random
	OnRound    func(RoundStats) bool
}

// Option is a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns the stock search configuration.
func DefaultOptions() Options {
	return Options{
		Iterations: DefaultIterations,
		Agents:     DefaultAgents,
		MaxSteps:   DefaultMaxSteps,
		Alpha:      DefaultAlpha,
		Beta:       DefaultBeta,
	}
}

// WithIterations sets the number of exploration rounds.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithAgents sets the number of agents spawned per round.
func WithAgents(n int) Option {
	return func(o *Options) { o.Agents = n }
}

// WithMaxSteps sets the per-agent step budget.
func WithMaxSteps(n int) Option {
	return func(o *Options) { o.MaxSteps = n }
}

// WithAlpha sets the pheromone exponent.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithBeta sets the inverse-distance exponent.
func WithBeta(beta float64) Option {
	return func(o *Options) { o.Beta = beta }
}

// WithSeed seeds the default random stream.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand injects an explicit random source.
func WithRand(r Random) Option {
	return func(o *Options) { o.Rand = r }
}

// WithOnRound installs a per-round callback. Returning false stops further rounds.
func WithOnRound(fn func(RoundStats) bool) Option {
	return func(o *Options) { o.OnRound = fn }
}

// Params is the flat parameter block of a path search, graph-level settings
// included. It mirrors the classic findPath(graph, source, target, params) call.
type Params struct {
	Iterations       int
	AgentsPerRound   int
	MaxSteps         int
	Alpha            float64
	Beta             float64
	EvaporationRate  float64
	InitialPheromone float64
}

// DefaultParams returns the documented defaults:
// iterations=100, agentsPerRound=100, maxSteps=100, alpha=0.7, beta=0.3,
// evaporationRate=0.1, initialPheromone=1.
func DefaultParams() Params {
	return Params{
		Iterations:       DefaultIterations,
		AgentsPerRound:   DefaultAgents,
		MaxSteps:         DefaultMaxSteps,
		Alpha:            DefaultAlpha,
		Beta:             DefaultBeta,
		EvaporationRate:  DefaultEvaporation,
		InitialPheromone: DefaultInitialPheromone,
	}
}

// Result holds the outcome of a path search.
type Result struct {
	// Path is the solution agent's walk, starting at the source.
	Path []int

	// Cost is the summed edge distance along Path.
	Cost float64

	// Reached reports whether Path ends at the target.
	Reached bool

	// Rounds is the number of exploration rounds actually run.
	Rounds int

	// FitAgents counts every agent that reinforced its path.
	FitAgents int
}
