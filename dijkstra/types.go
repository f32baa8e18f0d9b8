package dijkstra

import (
	"errors"
	"math"
)

var (
	// ErrNilGraph indicates that a nil graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source or target is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrUnreachable indicates that no path joins source and target.
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)

// Options configures a run.
//
// MaxDistance – nodes farther than this from the source are not settled.
type Options struct {
	MaxDistance float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns unbounded search options.
func DefaultOptions() Options {
	return Options{MaxDistance: math.Inf(1)}
}

// WithMaxDistance bounds the search radius. Negative values are treated as 0.
func WithMaxDistance(d float64) Option {
	return func(o *Options) { o.MaxDistance = math.Max(d, 0) }
}

// Path is a shortest route and its summed distance.
type Path struct {
	Nodes []int
	Cost  float64
}
