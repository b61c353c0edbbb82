// SPDX-License-Identifier: MIT
// Package: hyperlayout/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors (algorithms) MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// BuilderOption customizes constructor behavior by mutating a builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge weight generator. The function receives
// the (possibly nil) RNG and must return a positive, finite association strength.
// Panics on nil.
func WithWeightFn(fn func(*rand.Rand) float64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// ConstWeight returns a weight generator that always yields w.
// Panics unless w is positive and finite.
func ConstWeight(w float64) func(*rand.Rand) float64 {
	if !(w > 0) || math.IsInf(w, 0) {
		panic("builder: ConstWeight(w) requires 0 < w < +Inf")
	}
	return func(*rand.Rand) float64 { return w }
}

// UniformWeight returns a generator drawing weights uniformly from [lo, hi).
// It falls back to the midpoint when the RNG is nil. Panics unless 0 < lo ≤ hi.
func UniformWeight(lo, hi float64) func(*rand.Rand) float64 {
	if !(lo > 0) || hi < lo || math.IsInf(hi, 0) {
		panic("builder: UniformWeight requires 0 < lo ≤ hi < +Inf")
	}
	return func(r *rand.Rand) float64 {
		if r == nil {
			return (lo + hi) / 2
		}
		return lo + r.Float64()*(hi-lo)
	}
}
