package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/swarmlab/aco"
)

// Distances settles every node reachable from source within MaxDistance.
//
// Returns:
//
//   - dist: node id → minimum distance; unreachable nodes are absent.
//   - prev: node id → predecessor on a shortest path; the source is absent.
//
// Errors: ErrNilGraph, ErrVertexNotFound.
func Distances(g *aco.Graph, source int, opts ...Option) (map[int]float64, map[int]int, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.HasNode(source) {
		return nil, nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dist:    make(map[int]float64, g.Len()),
		prev:    make(map[int]int, g.Len()),
		settled: make(map[int]bool, g.Len()),
	}
	r.dist[source] = 0
	heap.Push(&r.pq, nodeItem{id: source, dist: 0})
	if err := r.process(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns a minimum-distance path from source to target.
// source == target yields the single-node path with cost 0.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrUnreachable.
func ShortestPath(g *aco.Graph, source, target int, opts ...Option) (Path, error) {
	if g != nil && !g.HasNode(target) {
		return Path{}, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}
	dist, prev, err := Distances(g, source, opts...)
	if err != nil {
		return Path{}, err
	}
	d, ok := dist[target]
	if !ok {
		return Path{}, fmt.Errorf("%w: %d → %d", ErrUnreachable, source, target)
	}

	nodes := []int{target}
	for at := target; at != source; {
		at = prev[at]
		nodes = append(nodes, at)
	}
	slices.Reverse(nodes)

	return Path{Nodes: nodes, Cost: d}, nil
}

// runner holds the mutable state of one run.
type runner struct {
	g       *aco.Graph
	options Options
	dist    map[int]float64
	prev    map[int]int
	settled map[int]bool
	pq      nodePQ
}

// process pops the closest unsettled node until the heap drains. Entries
// beyond MaxDistance are never pushed.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		if r.settled[item.id] {
			continue // stale entry
		}
		r.settled[item.id] = true
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax improves the tentative distance of every neighbor of u.
func (r *runner) relax(u int, du float64) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %d: %w", u, err)
	}
	for _, v := range neighbors {
		if r.settled[v] {
			continue
		}
		w, err := r.g.Distance(u, v)
		if err != nil {
			return fmt.Errorf("dijkstra: edge %d→%d: %w", u, v, err)
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		if old, ok := r.dist[v]; ok && nd >= old {
			continue
		}
		r.dist[v] = nd
		r.prev[v] = u
		heap.Push(&r.pq, nodeItem{id: v, dist: nd})
	}

	return nil
}

// nodeItem is a heap entry; duplicates per node are allowed (lazy decrease-key).
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap ordered by distance, then node id.
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// Gap returns how much longer cost is than the optimum, as a ratio
// (0 means optimal). A zero optimum yields 0 for a zero cost and +Inf otherwise.
func Gap(cost, optimum float64) float64 {
	if optimum == 0 {
		if cost == 0 {
			return 0
		}
		return math.Inf(1)
	}

	return cost/optimum - 1
}
