// Package dijkstra defines configuration options and sentinel errors
// for Dijkstra's shortest-path algorithm on a core.Graph.
//
// Edge costs are float64 and derived by a cost function, so the same graph
// can be measured in raw association weights, hops, or any derived length
// (e.g. equilibrium distance divided by association strength).
//
// Options:
//
//	– Source:      ID of the starting vertex (must be non-empty and present in the graph).
//	– ReturnPath:  if true, return the predecessor map for path reconstruction.
//	– MaxDistance: optional cap on distances to explore; vertices beyond this are skipped.
//	– Cost:        maps an edge to its traversal cost; +Inf marks the edge impassable.
//
// Errors (sentinel):
//
//	– ErrEmptySource     if the provided source ID is empty.
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrVertexNotFound  if the source vertex does not exist in the graph.
//	– ErrNegativeWeight  if a cost is negative or NaN.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/hyperlayout/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that an edge cost was negative or NaN.
	ErrNegativeWeight = errors.New("dijkstra: negative edge cost encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrNilCost indicates that WithCost received a nil function.
	ErrNilCost = errors.New("dijkstra: cost function is nil")
)

// CostFunc maps an edge to its traversal cost.
type CostFunc func(e *core.Edge) float64

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source      string   // The ID of the source vertex
	ReturnPath  bool     // Whether to return the predecessor map
	MaxDistance float64  // Maximum distance to explore
	Cost        CostFunc // Edge cost; nil means DefaultCost
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID. Must be supplied.
func Source(str string) Option {
	return func(o *Options) {
		o.Source = str
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Panics on a negative or NaN value.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithCost replaces the edge cost function. Panics on nil.
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn == nil {
			panic(ErrNilCost.Error())
		}
		o.Cost = fn
	}
}

// DefaultCost is the edge weight on weighted edges and 1 on unweighted ones
// (zero weight is how core marks an unweighted edge).
func DefaultCost(e *core.Edge) float64 {
	if e.Weight == 0 {
		return 1
	}

	return e.Weight
}

// HopCost counts every edge as 1.
func HopCost(*core.Edge) float64 { return 1 }

// DefaultOptions returns Options for the given source with no distance cap,
// no predecessor map and DefaultCost.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: math.Inf(1),
		Cost:        DefaultCost,
	}
}
