package aco_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmlab/aco"
)

// fixedRand replays a fixed sequence of draws, repeating the last one.
type fixedRand struct {
	vals []float64
	i    int
}

func (f *fixedRand) Float64() float64 {
	v := f.vals[f.i]
	if f.i < len(f.vals)-1 {
		f.i++
	}

	return v
}

// fork builds 0→1, 0→2, 1→3, 2→3 with unit distances.
func fork(t *testing.T) *aco.Graph {
	t.Helper()
	g := aco.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.AddEdge(1, 3, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))

	return g
}

func TestAgent_RouletteFollowsPrefixSums(t *testing.T) {
	// Equal weights 2 and 2: prefixes normalize to 0.5 and 1.0.
	cases := []struct {
		draw float64
		want int
	}{
		{0, 1},
		{0.4, 1},
		{0.5, 1},
		{0.6, 2},
		{math.Nextafter(1, 0), 2},
	}
	for _, tc := range cases {
		g := fork(t)
		a := aco.NewAgent(g, 0, 3, 1, 1, &fixedRand{vals: []float64{tc.draw}})
		require.NoError(t, a.Step())
		assert.Equal(t, tc.want, a.Current(), "draw=%v", tc.draw)
		assert.Equal(t, aco.Walking, a.State())
	}
}

func TestAgent_ReachesTargetAndAccumulatesCost(t *testing.T) {
	g := aco.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 2.5))
	require.NoError(t, g.AddEdge(1, 2, 4))

	a := aco.NewAgent(g, 0, 2, 0.7, 0.3, &fixedRand{vals: []float64{0.3}})
	require.NoError(t, a.Step())
	require.NoError(t, a.Step())

	assert.Equal(t, aco.Fit, a.State())
	assert.True(t, a.Reached())
	assert.Equal(t, []int{0, 1, 2}, a.Path())
	assert.InDelta(t, 6.5, a.Cost(), 1e-12)

	// Fit agents do not move any further.
	require.NoError(t, a.Step())
	assert.Equal(t, []int{0, 1, 2}, a.Path())
}

func TestAgent_StuckIsPermanent(t *testing.T) {
	g := aco.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 0, 1))
	g.AddNode(5)

	a := aco.NewAgent(g, 0, 5, 1, 1, &fixedRand{vals: []float64{0.1}})
	require.NoError(t, a.Step()) // 0 → 1
	require.NoError(t, a.Step()) // 1 has only visited 0
	assert.Equal(t, aco.Stuck, a.State())

	for i := 0; i < 5; i++ {
		require.NoError(t, a.Step())
	}
	assert.Equal(t, []int{0, 1}, a.Path())
	assert.False(t, a.Reached())
}

func TestSolutionAgent_IgnoresDistance(t *testing.T) {
	g := aco.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1000))
	require.NoError(t, g.AddEdge(0, 2, 1))
	require.NoError(t, g.SetPheromone(0, 1, 5))
	require.NoError(t, g.SetPheromone(0, 2, 1))

	a := aco.NewSolutionAgent(g, 0, 1, 0.7)
	require.True(t, a.IsSolution())
	require.NoError(t, a.Step())
	assert.Equal(t, 1, a.Current())
}

func TestSolutionAgent_TiesGoToLowestID(t *testing.T) {
	g := fork(t)
	a := aco.NewSolutionAgent(g, 0, 3, 0.7)
	require.NoError(t, a.Step())
	assert.Equal(t, 1, a.Current())
}

func TestAgent_DepositOnlyWhenFit(t *testing.T) {
	g := aco.NewGraph(aco.WithEvaporation(0.1))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	walker := aco.NewAgent(g, 0, 2, 1, 1, &fixedRand{vals: []float64{0}})
	require.NoError(t, walker.Step())
	require.NoError(t, walker.Deposit()) // still walking: no-op
	p, err := g.Pheromone(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, p)

	require.NoError(t, walker.Step())
	require.Equal(t, aco.Fit, walker.State())
	require.NoError(t, walker.Deposit())
	for _, e := range g.Edges() {
		assert.InDelta(t, 1+0.9*0.5, e.Pheromone, 1e-12, "%d→%d", e.From, e.To)
	}
}

func TestAgent_SourceIsTarget(t *testing.T) {
	g := fork(t)
	a := aco.NewAgent(g, 0, 0, 1, 1, &fixedRand{vals: []float64{0.5}})
	assert.Equal(t, aco.Fit, a.State())
	require.NoError(t, a.Deposit())
	assert.Equal(t, []int{0}, a.Path())
}
