package placement

import (
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/swarmlab/geo"
	"github.com/katalvlaran/swarmlab/internal/rng"
)

// OptimizePlacement is Optimize under the name callers of the map demo use.
func OptimizePlacement(cfg Config) Result { return Optimize(cfg) }

// Optimize runs the placement search described in the package documentation
// and returns the best device set with its score.
//
// Complexity: O(MaxIterations·MaxDevices·G) time where G is the grid size;
// O(InitialPopulation + G) space.
func Optimize(cfg Config) Result {
	cfg = cfg.withDefaults()
	rnd := rng.Resolve(cfg.Rand, cfg.Seed)

	population := GeneratePopulation(cfg.Polygon, cfg.InitialPopulation, cfg.MaxRange, cfg.MaxCost, rnd)
	grid := slices.Collect(geo.CoverageGrid(cfg.Polygon, cfg.GridStep))

	best := head(population, cfg.MaxDevices)
	bestScore := score(best, grid)
	res := Result{}

	for gen := 0; gen < cfg.MaxIterations; gen++ {
		Perturb(cfg.Polygon, population, cfg.Perturbation, rnd)
		candidate := head(population, cfg.MaxDevices)
		s := score(candidate, grid)

		accepted := s.Coverage > bestScore.Coverage || s.Cost < bestScore.Cost
		if accepted {
			best, bestScore = candidate, s
			res.Improvements++
		}
		res.Generations++

		if cfg.OnGeneration != nil && !cfg.OnGeneration(GenerationStats{
			Generation:   gen,
			Candidate:    s,
			Best:         bestScore,
			Accepted:     accepted,
			Improvements: res.Improvements,
			Remaining:    cfg.MaxIterations - gen - 1,
		}) {
			break
		}
	}

	res.Devices = best
	res.Coverage = bestScore.Coverage
	res.Cost = bestScore.Cost

	return res
}

// GeneratePopulation makes size draws in poly's bounding box and keeps the
// ones inside poly. Each kept device gets range in [0,maxRange), cost in
// [0,maxCost) and intensity in [0,1). Draw order per sample: lat, lng, then
// range, cost, intensity for hits.
func GeneratePopulation(poly geo.Polygon, size int, maxRange, maxCost float64, r Random) []Device {
	box := geo.BoundingBox(poly)
	out := make([]Device, 0, size)
	for i := 0; i < size; i++ {
		p := box.Sample(r)
		if !geo.Contains(poly, p) {
			continue
		}
		out = append(out, Device{
			Location:  p,
			Range:     r.Float64() * maxRange,
			Cost:      r.Float64() * maxCost,
			Intensity: r.Float64(),
		})
	}

	return out
}

// Perturb moves every device by (U-0.5)·magnitude on each axis in place,
// keeping the old location when the new one falls outside poly.
func Perturb(poly geo.Polygon, devices []Device, magnitude float64, r Random) {
	for i := range devices {
		loc := devices[i].Location
		moved := geo.Point{
			Lat: loc.Lat + (r.Float64()-0.5)*magnitude,
			Lng: loc.Lng + (r.Float64()-0.5)*magnitude,
		}
		if geo.Contains(poly, moved) {
			devices[i].Location = moved
		}
	}
}

// Evaluate scores devices against a freshly built coverage grid of poly.
// A zero or negative step falls back to DefaultGridStep.
func Evaluate(devices []Device, poly geo.Polygon, step float64) Score {
	if step <= 0 {
		step = DefaultGridStep
	}

	return score(devices, slices.Collect(geo.CoverageGrid(poly, step)))
}

func score(devices []Device, grid []geo.Point) Score {
	costs := make([]float64, len(devices))
	for i, d := range devices {
		costs[i] = d.Cost
	}
	s := Score{Cost: floats.Sum(costs)}
	if len(grid) == 0 {
		return s
	}

	covered := 0
	for _, p := range grid {
		for _, d := range devices {
			if geo.Haversine(p, d.Location) <= d.Range {
				covered++
				break
			}
		}
	}
	s.Coverage = float64(covered) / float64(len(grid)) * 100

	return s
}

// head copies the first n devices so later perturbation cannot alias them.
func head(devices []Device, n int) []Device {
	return slices.Clone(devices[:min(n, len(devices))])
}
