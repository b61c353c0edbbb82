// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Handle, State, Node, RoundStats and sentinel errors.

package embed

import (
	"errors"
	"time"

	"github.com/katalvlaran/hyperlayout/hyperpoint"
)

// Sentinel errors for embedding operations.
var (
	// ErrRoundInProgress indicates a mutation or a second Step while a round is running.
	ErrRoundInProgress = errors.New("embed: round in progress")

	// ErrEmptyHandle indicates an empty node handle.
	ErrEmptyHandle = errors.New("embed: node handle is empty")

	// ErrNodeExists indicates AddNode was called with a handle already registered.
	ErrNodeExists = errors.New("embed: node already exists")

	// ErrNodeNotFound indicates an operation referenced an unknown handle.
	ErrNodeNotFound = errors.New("embed: node not found")

	// ErrBadWeight indicates an association weight that is not a positive finite number.
	ErrBadWeight = errors.New("embed: association weight must be positive and finite")

	// ErrSelfAssociation indicates a node was associated with itself.
	ErrSelfAssociation = errors.New("embed: node cannot be associated with itself")

	// ErrBadParameter indicates a negative or non-finite equilibrium distance or learning rate.
	ErrBadParameter = errors.New("embed: bad relaxation parameter")

	// ErrBadDimension indicates an embedding dimension below 1.
	ErrBadDimension = errors.New("embed: dimension must be at least 1")

	// ErrNilGraph indicates FromGraph received a nil graph.
	ErrNilGraph = errors.New("embed: graph is nil")
)

// Handle identifies a node. It is opaque to the engine; graph providers
// typically reuse their own vertex IDs.
type Handle string

// State is the coordinator phase.
type State int32

const (
	// Idle means no round is running; the node set may change.
	Idle State = iota
	// Relaxing means per-node tasks are computing pending positions.
	Relaxing
	// Recentering means pending positions are being committed and recentered.
	Recentering
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Relaxing:
		return "relaxing"
	case Recentering:
		return "recentering"
	default:
		return "unknown"
	}
}

// Node is a copy of one node's state as returned by Embedding.Node.
type Node struct {
	// Handle identifies the node.
	Handle Handle

	// Position is the committed position.
	Position hyperpoint.Point

	// Neighbors maps each associated handle to its weight.
	Neighbors map[Handle]float64

	// EquilibriumDistance overrides the embedding default when > 0.
	EquilibriumDistance float64

	// LearningRate overrides the embedding default when > 0.
	LearningRate float64
}

// RoundStats summarizes one completed round.
// Shift is the distance a node moved during relaxation, before recentering.
type RoundStats struct {
	Round     uint64
	Nodes     int
	MaxShift  float64
	MeanShift float64
	Elapsed   time.Duration
}

// node is the registry entry behind a Handle.
// out holds this node's associations; in holds the handles associated to it,
// so removal and the non-neighbor test need no full scan.
type node struct {
	pos hyperpoint.Point
	out map[Handle]float64
	in  map[Handle]struct{}
	eq  float64
	lr  float64
}

func newNode(pos hyperpoint.Point) *node {
	return &node{
		pos: pos,
		out: make(map[Handle]float64),
		in:  make(map[Handle]struct{}),
	}
}
