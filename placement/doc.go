// Package placement searches for a good placement of coverage devices
// (antennas) inside a polygon with a population-based perturbation heuristic.
//
// Algorithm:
//
//  1. Draw InitialPopulation uniform points in the polygon's bounding box and
//     keep those inside the polygon, each with a random range, cost and
//     intensity. Misses are skipped, not retried, so the population can be
//     smaller than requested, even empty.
//  2. The first MaxDevices devices are the initial best solution.
//  3. Score = (coverage %, total cost). Coverage is the share of coverage-grid
//     points within range of at least one device.
//  4. For MaxIterations generations, jitter every device location, undoing
//     moves that leave the polygon, and score the first MaxDevices again. The
//     new solution replaces the best one when its coverage is strictly higher
//     OR its cost strictly lower. The rule is not Pareto dominance: a
//     replacement may lose on one metric while winning on the other.
//
// Device.Intensity is drawn and carried but never consulted by scoring.
//
// Degenerate input never fails: an empty device list with 0% coverage means
// no sample landed inside the polygon.
//
// The coverage grid depends only on the polygon, so Optimize builds it once
// per call; Evaluate builds it afresh. Both give the same scores.
package placement
