// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, sentinel errors and the result type of breadth-first search.

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("bfs: vertex not reached")
)

// Option configures a search. An invalid Option is recorded and reported as
// ErrOptionViolation by BFS.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks of one search.
type BFSOptions struct {
	Ctx context.Context

	// OnVisit runs once per reached vertex, in visit order; an error aborts.
	OnVisit func(id string, depth int) error

	// MaxDepth > 0 stops expansion past that many hops.
	MaxDepth int

	// FilterNeighbor drops the step curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	// Undirected follows directed edges both ways. A no-op on undirected graphs.
	Undirected bool

	err error
}

// DefaultOptions: background context, unlimited depth, every neighbor allowed.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a visit hook. nil is ignored.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to d hops; 0 means unlimited, d < 0 is an
// ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false. nil is ignored.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithUndirected ignores edge direction, so hop counts match the symmetric
// pull an association exerts in an embedding.
func WithUndirected() Option {
	return func(o *BFSOptions) { o.Undirected = true }
}

// BFSResult is the BFS tree rooted at the start vertex.
type BFSResult struct {
	// Order lists reached vertices in visit order; depths are non-decreasing.
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Layers groups reached vertices by hop count: Layers()[k] holds every vertex
// k hops from the start, in visit order.
func (r *BFSResult) Layers() [][]string {
	var layers [][]string
	for _, id := range r.Order {
		d := r.Depth[id]
		for len(layers) <= d {
			layers = append(layers, nil)
		}
		layers[d] = append(layers[d], id)
	}

	return layers
}

// PathTo returns the tree path from the start vertex to dest, or ErrNoPath.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("PathTo %q: %w", dest, ErrNoPath)
	}
	path := make([]string, d+1)
	for cur := dest; d >= 0; d-- {
		path[d] = cur
		cur = r.Parent[cur]
	}

	return path, nil
}
