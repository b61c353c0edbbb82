// Package dfs defines options, results and errors for depth-first search
// over core.Graph.
package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start vertex is absent.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")
)

// Option configures a traversal.
type Option func(*DFSOptions)

// DFSOptions holds traversal settings.
type DFSOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// OnVisit is the pre-order hook; an error aborts the traversal.
	OnVisit func(id string) error

	// OnExit is the post-order hook; an error aborts the traversal.
	OnExit func(id string) error

	// FullTraversal continues from every unvisited vertex (sorted), producing a forest.
	FullTraversal bool

	// Undirected follows directed edges both ways, which makes the forest
	// trees the weakly connected components.
	Undirected bool
}

// DefaultOptions returns a single-tree, direction-respecting traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnVisit = fn }
}

// WithOnExit registers a post-order hook.
func WithOnExit(fn func(id string) error) Option {
	return func(o *DFSOptions) { o.OnExit = fn }
}

// WithFullTraversal visits every vertex of the graph.
func WithFullTraversal() Option {
	return func(o *DFSOptions) { o.FullTraversal = true }
}

// WithUndirected ignores edge direction.
func WithUndirected() Option {
	return func(o *DFSOptions) { o.Undirected = true }
}

// DFSResult holds the traversal outcome.
type DFSResult struct {
	// Order lists vertices in post-order (finish order).
	Order []string

	// Depth is the tree depth of each visited vertex.
	Depth map[string]int

	// Parent is the DFS-tree predecessor; roots have none.
	Parent map[string]string

	// Roots lists the tree roots in the order trees were started.
	Roots []string
}
