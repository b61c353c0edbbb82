// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options for New / FromGraph.
// Policy:
//   - Option constructors panic on meaningless values; they are programmer errors.

package embed

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/hashicorp/go-hclog"
)

const (
	// DefaultEquilibriumDistance is the rest separation of two nodes associated with weight 1.
	DefaultEquilibriumDistance = 1.0

	// DefaultLearningRate scales each round's accumulated displacement.
	DefaultLearningRate = 0.1
)

// Option configures an Embedding.
type Option func(*Embedding)

// RelaxHook runs inside a relaxation task before the node's force sum is
// computed. Returning an error aborts the round without committing.
type RelaxHook func(h Handle, round uint64) error

// RoundHook runs after a round has been committed and recentered.
type RoundHook func(stats RoundStats)

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// WithEquilibriumDistance sets the default equilibrium distance. Panics unless d > 0 and finite.
func WithEquilibriumDistance(d float64) Option {
	if !positiveFinite(d) {
		panic(fmt.Sprintf("embed: WithEquilibriumDistance(%v): must be positive and finite", d))
	}
	return func(e *Embedding) { e.eq = d }
}

// WithLearningRate sets the default learning rate. Panics unless r > 0 and finite.
func WithLearningRate(r float64) Option {
	if !positiveFinite(r) {
		panic(fmt.Sprintf("embed: WithLearningRate(%v): must be positive and finite", r))
	}
	return func(e *Embedding) { e.lr = r }
}

// WithWorkers bounds relaxation parallelism. n ≤ 0 selects runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(e *Embedding) { e.workers = n }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l hclog.Logger) Option {
	if l == nil {
		panic("embed: WithLogger(nil)")
	}
	return func(e *Embedding) { e.logger = l }
}

// WithSeed seeds the source AddRandomNode draws positions from.
func WithSeed(seed int64) Option {
	return func(e *Embedding) { e.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand sets the source AddRandomNode draws positions from. Panics on nil.
// The Embedding serializes its own use of r.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("embed: WithRand(nil)")
	}
	return func(e *Embedding) { e.rng = r }
}

// WithOnRelax registers a hook called once per node per round.
// It runs concurrently from pool workers and must be safe for that.
func WithOnRelax(fn RelaxHook) Option {
	if fn == nil {
		panic("embed: WithOnRelax(nil)")
	}
	return func(e *Embedding) { e.onRelax = fn }
}

// WithOnRound registers a hook called after every completed round.
func WithOnRound(fn RoundHook) Option {
	if fn == nil {
		panic("embed: WithOnRound(nil)")
	}
	return func(e *Embedding) { e.onRound = fn }
}
