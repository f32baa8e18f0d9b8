package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmlab/internal/logging"
)

const (
	airportsFixture = "../../dataset/testdata/airports.csv"
	routesFixture   = "../../dataset/testdata/routes.csv"
	campusFixture   = "../../dataset/testdata/campus.geojson"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestRun_Usage(t *testing.T) {
	ctx := context.Background()
	var out, errOut bytes.Buffer

	cases := [][]string{
		nil,
		{"fly"},
		{"route", "-from", "1"},
		{"place"},
		{"route", "-nope"},
	}
	for _, args := range cases {
		err := run(ctx, args, &out, &errOut)
		require.ErrorIs(t, err, errUsage, "args %v", args)
	}
	assert.Zero(t, out.Len())
}

func TestExitCode(t *testing.T) {
	ctx := context.Background()
	var logs, errOut bytes.Buffer
	log := logging.NewWithWriter(logging.Config{Level: "error"}, &logs)

	assert.Equal(t, 0, exitCode(ctx, log, &errOut, nil))
	assert.Zero(t, logs.Len())

	assert.Equal(t, 1, exitCode(ctx, log, &errOut, errors.New("disk gone")))
	assert.Contains(t, logs.String(), "level=ERROR")
	assert.Contains(t, logs.String(), "disk gone")
	assert.Zero(t, errOut.Len())

	err := run(ctx, []string{"fly"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, 2, exitCode(ctx, log, &errOut, err))
	assert.Contains(t, errOut.String(), "swarmlab route")
}

func TestRun_Route(t *testing.T) {
	cfg := writeConfig(t, "log:\n  level: debug\n  format: json\nroute:\n  iterations: 5\n  agents_per_round: 4\n")
	var out, errOut bytes.Buffer

	err := run(context.Background(), []string{"route",
		"-airports", airportsFixture, "-routes", routesFixture,
		"-from", "1", "-to", "3", "-config", cfg, "-seed", "5", "-metrics",
	}, &out, &errOut)
	require.NoError(t, err)

	var got routeOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	_, err = uuid.Parse(got.RunID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got.Path)
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, got.Names)
	assert.True(t, got.Reached)
	assert.Equal(t, 5, got.Rounds)
	assert.Equal(t, 20, got.FitAgents)
	assert.InDelta(t, 222.39, got.CostKm, 0.01)
	require.NotNil(t, got.OptimalKm)
	assert.InDelta(t, got.CostKm, *got.OptimalKm, 1e-9)
	require.NotNil(t, got.Gap)
	assert.InDelta(t, 0, *got.Gap, 1e-9)
	assert.Equal(t, 5.0, got.Metrics["swarmlab_aco_rounds_total"])
	assert.Equal(t, 1.0, got.Metrics["swarmlab_aco_searches_total"])

	assert.Contains(t, errOut.String(), `"msg":"round finished"`)
	assert.Contains(t, errOut.String(), got.RunID)
}

func TestRun_RouteInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errOut bytes.Buffer

	err := run(ctx, []string{"route",
		"-airports", airportsFixture, "-routes", routesFixture, "-from", "1", "-to", "3",
	}, &out, &errOut)
	require.NoError(t, err)

	var got routeOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 1, got.Rounds, "stops after the first round")
	assert.True(t, got.Reached, "solution agent still runs")
	assert.Nil(t, got.Metrics)
}

func TestRun_RouteUnknownAirport(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"route",
		"-airports", airportsFixture, "-routes", routesFixture, "-from", "1", "-to", "42",
	}, &out, &errOut)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errUsage)
}

func TestRun_Place(t *testing.T) {
	cfg := writeConfig(t, "placement:\n  max_devices: 3\n  max_iterations: 4\n  initial_population: 10\n")
	var out, errOut bytes.Buffer

	err := run(context.Background(), []string{"place", "-polygon", campusFixture, "-config", cfg, "-metrics"}, &out, &errOut)
	require.NoError(t, err)

	var got placeOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.NotEmpty(t, got.RunID)
	assert.LessOrEqual(t, len(got.Devices), 3)
	assert.GreaterOrEqual(t, got.Coverage, 0.0)
	assert.LessOrEqual(t, got.Coverage, 100.0)
	assert.Equal(t, 4, got.Generations)
	assert.Equal(t, 4.0, got.Metrics["swarmlab_placement_generations_total"])
	assert.Equal(t, got.Coverage, got.Metrics["swarmlab_placement_best_coverage_percent"])
}

func TestRun_PlaceMissingFile(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"place", "-polygon", filepath.Join(t.TempDir(), "none.geojson")}, &out, &errOut)
	require.Error(t, err)
}

func TestRun_RouteWarnsBeyondStepLimit(t *testing.T) {
	cfg := writeConfig(t, "route:\n  iterations: 2\n  agents_per_round: 2\n  max_steps: 1\n")
	var out, errOut bytes.Buffer

	err := run(context.Background(), []string{"route",
		"-airports", airportsFixture, "-routes", routesFixture, "-from", "1", "-to", "3", "-config", cfg,
	}, &out, &errOut)
	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "farther than the agent step limit")

	var got routeOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Zero(t, got.FitAgents)
	assert.True(t, got.Reached, "solution agent gets ten times the step budget")
}
