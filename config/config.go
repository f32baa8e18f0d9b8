// Package config loads swarmlab run configuration from YAML.
//
// Loading starts from Default() and overlays the file, so a file only needs
// the keys it changes. Unknown keys are rejected.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/swarmlab/aco"
	"github.com/katalvlaran/swarmlab/geo"
	"github.com/katalvlaran/swarmlab/internal/logging"
	"github.com/katalvlaran/swarmlab/placement"
)

// Config is the whole run configuration.
type Config struct {
	Log       logging.Config `yaml:"log"`
	Metrics   bool           `yaml:"metrics"`
	Route     Route          `yaml:"route"`
	Placement Placement      `yaml:"placement"`
}

// Route holds path-search parameters.
type Route struct {
	Iterations       int     `yaml:"iterations"`
	AgentsPerRound   int     `yaml:"agents_per_round"`
	MaxSteps         int     `yaml:"max_steps"`
	Alpha            float64 `yaml:"alpha"`
	Beta             float64 `yaml:"beta"`
	EvaporationRate  float64 `yaml:"evaporation_rate"`
	InitialPheromone float64 `yaml:"initial_pheromone"`
	Seed             int64   `yaml:"seed"`
}

// Placement holds placement-search parameters.
type Placement struct {
	MaxDevices        int     `yaml:"max_devices"`
	MaxIterations     int     `yaml:"max_iterations"`
	InitialPopulation int     `yaml:"initial_population"`
	MaxRange          float64 `yaml:"max_range"`
	MaxCost           float64 `yaml:"max_cost"`
	GridStep          float64 `yaml:"grid_step"`
	Perturbation      float64 `yaml:"perturbation"`
	Seed              int64   `yaml:"seed"`
}

// Default returns a working configuration: the documented search defaults and
// the demo's 10 antennas, 100 generations, population 50.
func Default() Config {
	p := aco.DefaultParams()

	return Config{
		Log: logging.Config{Level: "info", Format: "text"},
		Route: Route{
			Iterations:       p.Iterations,
			AgentsPerRound:   p.AgentsPerRound,
			MaxSteps:         p.MaxSteps,
			Alpha:            p.Alpha,
			Beta:             p.Beta,
			EvaporationRate:  p.EvaporationRate,
			InitialPheromone: p.InitialPheromone,
		},
		Placement: Placement{
			MaxDevices:        10,
			MaxIterations:     100,
			InitialPopulation: 50,
			MaxRange:          placement.DefaultMaxRange,
			MaxCost:           placement.DefaultMaxCost,
			GridStep:          placement.DefaultGridStep,
			Perturbation:      placement.DefaultPerturbation,
		},
	}
}

// Load reads the YAML file at path over Default(). An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Default(), fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse decodes YAML from r over Default(). Unknown keys are an error; an
// empty document keeps the defaults.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: decode: %w", err)
	}

	return cfg, nil
}

// Params converts the route section to aco parameters.
func (r Route) Params() aco.Params {
	return aco.Params{
		Iterations:       r.Iterations,
		AgentsPerRound:   r.AgentsPerRound,
		MaxSteps:         r.MaxSteps,
		Alpha:            r.Alpha,
		Beta:             r.Beta,
		EvaporationRate:  r.EvaporationRate,
		InitialPheromone: r.InitialPheromone,
	}
}

// Config converts the placement section to an optimizer config for poly.
func (p Placement) Config(poly geo.Polygon) placement.Config {
	return placement.Config{
		Polygon:           poly,
		MaxDevices:        p.MaxDevices,
		MaxIterations:     p.MaxIterations,
		InitialPopulation: p.InitialPopulation,
		MaxRange:          p.MaxRange,
		MaxCost:           p.MaxCost,
		GridStep:          p.GridStep,
		Perturbation:      p.Perturbation,
		Seed:              p.Seed,
	}
}
