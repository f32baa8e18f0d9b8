package placement

import "github.com/katalvlaran/swarmlab/geo"

// Defaults taken when the matching Config field is zero.
const (
	DefaultMaxRange     = 500.0 // metres
	DefaultMaxCost      = 1000.0
	DefaultGridStep     = 0.001 // degrees
	DefaultPerturbation = 0.01  // degrees
)

// Random is a source of uniform draws in [0,1). *math/rand.Rand satisfies it.
type Random = geo.Random

// Device is a coverage device (antenna).
type Device struct {
	Location  geo.Point `json:"location"`
	Range     float64   `json:"range"`     // metres
	Cost      float64   `json:"cost"`
	Intensity float64   `json:"intensity"` // [0,1], not used by scoring
}

// Score is the evaluation of a device set.
type Score struct {
	Coverage float64 `json:"coverage"` // percent of grid points covered, [0,100]
	Cost     float64 `json:"cost"`     // sum of device costs
}

// GenerationStats summarizes one finished generation.
type GenerationStats struct {
	Generation   int   // zero-based
	Candidate    Score // score of this generation's candidate
	Best         Score // best score after this generation
	Accepted     bool  // whether the candidate replaced the best solution
	Improvements int   // accepted replacements so far
	Remaining    int   // generations left after this one
}

// Config describes one optimization run.
//
// Polygon, MaxDevices, MaxIterations and InitialPopulation are required and
// assumed valid. MaxRange, MaxCost, GridStep and Perturbation fall back to the
// package defaults when zero. Rand overrides Seed; seed 0 selects a fixed
// default stream. OnGeneration, when set, runs after every generation and
// stops the run by returning false.
type Config struct {
	Polygon           geo.Polygon
	MaxDevices        int
	MaxIterations     int
	InitialPopulation int

	MaxRange     float64
	MaxCost      float64
	GridStep     float64
	Perturbation float64

	Seed         int64
	Rand         Random
	OnGeneration func(GenerationStats) bool
}

// Result is the best solution found.
type Result struct {
	Devices      []Device `json:"devices"`
	Coverage     float64  `json:"coverage"`
	Cost         float64  `json:"cost"`
	Generations  int      `json:"generations"`
	Improvements int      `json:"improvements"`
}

// withDefaults fills zero-valued tunables.
func (c Config) withDefaults() Config {
	if c.MaxRange == 0 {
		c.MaxRange = DefaultMaxRange
	}
	if c.MaxCost == 0 {
		c.MaxCost = DefaultMaxCost
	}
	if c.GridStep == 0 {
		c.GridStep = DefaultGridStep
	}
	if c.Perturbation == 0 {
		c.Perturbation = DefaultPerturbation
	}

	return c
}
