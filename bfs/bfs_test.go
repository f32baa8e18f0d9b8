package bfs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/swarmlab/aco"
	"github.com/katalvlaran/swarmlab/bfs"
)

// chain 0→1→2→3 plus a shortcut 0→2 and an island 5→6.
func chain(t *testing.T) *aco.Graph {
	t.Helper()
	g := aco.NewGraph()
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(0, 2, 10))
	require.NoError(t, g.AddEdge(5, 6, 1))

	return g
}

func TestBFS_Validation(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	_, err = bfs.BFS(chain(t), 42)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(chain(t), 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(chain(t), 0, bfs.WithContext(nil))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_HopsIgnoreDistance(t *testing.T) {
	res, err := bfs.BFS(chain(t), 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 2}, res.Depth)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 2}, res.Parent)

	h, ok := res.Hops(3)
	assert.True(t, ok)
	assert.Equal(t, 2, h)
	_, ok = res.Hops(6)
	assert.False(t, ok, "island is unreachable")

	assert.Equal(t, []int{0, 2, 3}, res.PathTo(3))
	assert.Equal(t, []int{0}, res.PathTo(0))
	assert.Nil(t, res.PathTo(5))
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(chain(t), 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	_, ok := res.Hops(3)
	assert.False(t, ok)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(chain(t), 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}
