// Package bfs provides options and error definitions for breadth-first
// search over an aco.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start id is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds the parameters of one traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns a background context and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil context is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithMaxDepth limits traversal depth; 0 disables the limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth must be >= 0, got %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds what a traversal discovered.
type Result struct {
	// Order lists nodes in visit order.
	Order []int

	// Depth maps each reached node to its hop count from the start.
	Depth map[int]int

	// Parent maps each reached node (except the start) to the node it was found from.
	Parent map[int]int
}

// Hops reports the hop count to id and whether it was reached.
func (r *Result) Hops(id int) (int, bool) {
	d, ok := r.Depth[id]
	return d, ok
}

// PathTo rebuilds the fewest-hops path from the start to id, or nil if id was not reached.
func (r *Result) PathTo(id int) []int {
	d, ok := r.Depth[id]
	if !ok {
		return nil
	}
	path := make([]int, d+1)
	for i := d; i > 0; i-- {
		path[i] = id
		id = r.Parent[id]
	}
	path[0] = id

	return path
}
