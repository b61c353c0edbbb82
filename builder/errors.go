// SPDX-License-Identifier: MIT
// Package: hyperlayout/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w ("Cycle: n=2 < min=3: builder: parameter too small").

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, layer size)
// is smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand (WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not complete construction
// (nil constructor, nil graph, core rejection).
var ErrConstructFailed = errors.New("builder: construction failed")
