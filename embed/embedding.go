// SPDX-License-Identifier: MIT
//
// File: embedding.go
// Role: Embedding construction, node registry mutators and read accessors.
// Policy:
//   - mu guards the registry, state and counters; it is NOT held while a
//     round is relaxing, so mutators can observe the state and fail fast.
//   - Accessors return copies; positions are immutable Points.
//   - Handles() and every internal iteration are sorted for determinism.

package embed

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/hyperlayout/hyperpoint"
	"github.com/katalvlaran/hyperlayout/pool"
)

// Embedding is the round-based coordinator owning every node of one layout.
type Embedding struct {
	mu    sync.RWMutex
	nodes map[Handle]*node
	state State

	dim     int
	eq      float64
	lr      float64
	workers int
	rng     *rand.Rand

	pool    *pool.Pool
	logger  hclog.Logger
	id      uuid.UUID
	rounds  uint64
	last    RoundStats
	onRelax RelaxHook
	onRound RoundHook
}

// New creates an empty Embedding of dimension dim.
// Returns ErrBadDimension if dim < 1.
func New(dim int, opts ...Option) (*Embedding, error) {
	if dim < 1 {
		return nil, fmt.Errorf("New: dim=%d: %w", dim, ErrBadDimension)
	}
	e := &Embedding{
		nodes:  make(map[Handle]*node),
		dim:    dim,
		eq:     DefaultEquilibriumDistance,
		lr:     DefaultLearningRate,
		logger: hclog.NewNullLogger(),
		id:     uuid.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.logger = e.logger.Named("embed").With("run", e.id.String())
	e.pool = pool.New(e.workers, pool.WithLogger(e.logger.Named("pool")))
	e.logger.Debug("embedding created", "dim", dim, "equilibrium", e.eq, "learning_rate", e.lr, "workers", e.pool.Workers())

	return e, nil
}

// guard returns ErrRoundInProgress unless the Embedding is Idle. Caller holds mu.
func (e *Embedding) guard(method string) error {
	if e.state != Idle {
		return fmt.Errorf("%s: state=%s: %w", method, e.state, ErrRoundInProgress)
	}

	return nil
}

// lookup returns the node behind h. Caller holds mu.
func (e *Embedding) lookup(method string, h Handle) (*node, error) {
	if h == "" {
		return nil, fmt.Errorf("%s: %w", method, ErrEmptyHandle)
	}
	n, ok := e.nodes[h]
	if !ok {
		return nil, fmt.Errorf("%s(%s): %w", method, h, ErrNodeNotFound)
	}

	return n, nil
}

// AddNode registers h at pos.
// Returns ErrEmptyHandle, hyperpoint.ErrDimensionMismatch, ErrRoundInProgress or ErrNodeExists.
func (e *Embedding) AddNode(h Handle, pos hyperpoint.Point) error {
	if h == "" {
		return fmt.Errorf("AddNode: %w", ErrEmptyHandle)
	}
	if pos.Dimension() != e.dim {
		return fmt.Errorf("AddNode(%s): dim %d, want %d: %w", h, pos.Dimension(), e.dim, hyperpoint.ErrDimensionMismatch)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard("AddNode"); err != nil {
		return err
	}

	return e.addLocked(h, pos)
}

func (e *Embedding) addLocked(h Handle, pos hyperpoint.Point) error {
	if _, ok := e.nodes[h]; ok {
		return fmt.Errorf("AddNode(%s): %w", h, ErrNodeExists)
	}
	e.nodes[h] = newNode(pos)
	e.logger.Trace("node added", "handle", h, "position", pos.String())

	return nil
}

// AddRandomNode registers h at a position drawn uniformly from [-1, 1] per
// coordinate and returns that position.
func (e *Embedding) AddRandomNode(h Handle) (hyperpoint.Point, error) {
	if h == "" {
		return hyperpoint.Point{}, fmt.Errorf("AddRandomNode: %w", ErrEmptyHandle)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard("AddRandomNode"); err != nil {
		return hyperpoint.Point{}, err
	}
	pos, err := hyperpoint.Random(e.dim, e.rng)
	if err != nil {
		return hyperpoint.Point{}, fmt.Errorf("AddRandomNode(%s): %w", h, err)
	}
	if err := e.addLocked(h, pos); err != nil {
		return hyperpoint.Point{}, err
	}

	return pos, nil
}

// RemoveNode deletes h and every association to or from it.
// Returns ErrRoundInProgress or ErrNodeNotFound.
func (e *Embedding) RemoveNode(h Handle) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard("RemoveNode"); err != nil {
		return err
	}
	n, err := e.lookup("RemoveNode", h)
	if err != nil {
		return err
	}
	for to := range n.out {
		delete(e.nodes[to].in, h)
	}
	for from := range n.in {
		delete(e.nodes[from].out, h)
	}
	delete(e.nodes, h)
	e.logger.Trace("node removed", "handle", h)

	return nil
}

// Associate sets the directed association from→to to weight w, replacing any
// previous weight. Returns ErrBadWeight, ErrSelfAssociation, ErrRoundInProgress
// or ErrNodeNotFound.
func (e *Embedding) Associate(from, to Handle, w float64) error {
	if !positiveFinite(w) {
		return fmt.Errorf("Associate(%s→%s): w=%v: %w", from, to, w, ErrBadWeight)
	}
	if from == to {
		return fmt.Errorf("Associate(%s): %w", from, ErrSelfAssociation)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard("Associate"); err != nil {
		return err
	}

	return e.associateLocked(from, to, w)
}

func (e *Embedding) associateLocked(from, to Handle, w float64) error {
	src, err := e.lookup("Associate", from)
	if err != nil {
		return err
	}
	dst, err := e.lookup("Associate", to)
	if err != nil {
		return err
	}
	src.out[to] = w
	dst.in[from] = struct{}{}

	return nil
}

// AssociateMutual associates a→b and b→a with the same weight.
// Either both associations are recorded or neither is.
func (e *Embedding) AssociateMutual(a, b Handle, w float64) error {
	if !positiveFinite(w) {
		return fmt.Errorf("AssociateMutual(%s↔%s): w=%v: %w", a, b, w, ErrBadWeight)
	}
	if a == b {
		return fmt.Errorf("AssociateMutual(%s): %w", a, ErrSelfAssociation)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard("AssociateMutual"); err != nil {
		return err
	}
	// Both lookups first, so a missing node leaves the registry untouched.
	if _, err := e.lookup("AssociateMutual", a); err != nil {
		return err
	}
	if _, err := e.lookup("AssociateMutual", b); err != nil {
		return err
	}
	_ = e.associateLocked(a, b, w)
	_ = e.associateLocked(b, a, w)

	return nil
}

// Dissociate removes the directed association from→to. Removing an
// association that does not exist is a no-op.
// Returns ErrRoundInProgress or ErrNodeNotFound.
func (e *Embedding) Dissociate(from, to Handle) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard("Dissociate"); err != nil {
		return err
	}
	src, err := e.lookup("Dissociate", from)
	if err != nil {
		return err
	}
	dst, err := e.lookup("Dissociate", to)
	if err != nil {
		return err
	}
	delete(src.out, to)
	delete(dst.in, from)

	return nil
}

// SetNodeParameters overrides the equilibrium distance and learning rate for h.
// A zero value restores the embedding default for that parameter.
// Returns ErrBadParameter, ErrRoundInProgress or ErrNodeNotFound.
func (e *Embedding) SetNodeParameters(h Handle, eq, lr float64) error {
	for _, v := range []float64{eq, lr} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("SetNodeParameters(%s): eq=%v lr=%v: %w", h, eq, lr, ErrBadParameter)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.guard("SetNodeParameters"); err != nil {
		return err
	}
	n, err := e.lookup("SetNodeParameters", h)
	if err != nil {
		return err
	}
	n.eq, n.lr = eq, lr

	return nil
}

// PositionOf returns the committed position of h.
func (e *Embedding) PositionOf(h Handle) (hyperpoint.Point, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	n, err := e.lookup("PositionOf", h)
	if err != nil {
		return hyperpoint.Point{}, err
	}

	return n.pos, nil
}

// Positions returns the committed position of every node.
func (e *Embedding) Positions() map[Handle]hyperpoint.Point {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[Handle]hyperpoint.Point, len(e.nodes))
	for h, n := range e.nodes {
		out[h] = n.pos
	}

	return out
}

// Handles returns every registered handle in ascending order.
func (e *Embedding) Handles() []Handle {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.sortedHandles()
}

// sortedHandles is Handles without locking. Caller holds mu.
func (e *Embedding) sortedHandles() []Handle {
	hs := make([]Handle, 0, len(e.nodes))
	for h := range e.nodes {
		hs = append(hs, h)
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })

	return hs
}

// Neighbors returns a copy of h's outgoing associations.
func (e *Embedding) Neighbors(h Handle) (map[Handle]float64, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	n, err := e.lookup("Neighbors", h)
	if err != nil {
		return nil, err
	}
	out := make(map[Handle]float64, len(n.out))
	for k, w := range n.out {
		out[k] = w
	}

	return out, nil
}

// Node returns a copy of h's state.
func (e *Embedding) Node(h Handle) (Node, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	n, err := e.lookup("Node", h)
	if err != nil {
		return Node{}, err
	}
	nbrs := make(map[Handle]float64, len(n.out))
	for k, w := range n.out {
		nbrs[k] = w
	}

	return Node{
		Handle:              h,
		Position:            n.pos,
		Neighbors:           nbrs,
		EquilibriumDistance: n.eq,
		LearningRate:        n.lr,
	}, nil
}

// Len returns the number of nodes.
func (e *Embedding) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return len(e.nodes)
}

// Dimensions returns D.
func (e *Embedding) Dimensions() int { return e.dim }

// EquilibriumDistance returns the default equilibrium distance.
func (e *Embedding) EquilibriumDistance() float64 { return e.eq }

// LearningRate returns the default learning rate.
func (e *Embedding) LearningRate() float64 { return e.lr }

// Workers returns the relaxation parallelism bound.
func (e *Embedding) Workers() int { return e.pool.Workers() }

// State returns the current phase.
func (e *Embedding) State() State {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.state
}

// Rounds returns the number of completed rounds.
func (e *Embedding) Rounds() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.rounds
}

// ID identifies this Embedding in logs.
func (e *Embedding) ID() uuid.UUID { return e.id }

// LastRound returns statistics of the most recent completed round
// (the zero value before the first one).
func (e *Embedding) LastRound() RoundStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.last
}
