// SPDX-License-Identifier: MIT

// Package embed places the nodes of a weighted graph in N-dimensional space by
// iterative force relaxation, so that geometric distance comes to approximate
// graph distance.
//
// An Embedding owns a set of nodes, each identified by an opaque Handle and
// carrying a hyperpoint.Point position plus directed, positively weighted
// associations to other nodes. Every call to Step runs exactly one round:
//
//  1. Snapshot: every position is copied into an immutable arena.
//  2. Relax: one task per node (fanned out over a pool.Pool) computes the
//     node's next position from the snapshot alone and writes it to its own
//     pending slot.
//  3. Commit: after the barrier, pending positions replace current ones.
//  4. Recenter: every position is translated so the centroid is the origin.
//
// Because relaxation reads only the snapshot, a round is a Jacobi sweep and
// its result does not depend on how the pool schedules tasks.
//
// Forces (per node, against the snapshot, eq = equilibrium distance):
//
//   - Neighbor n with weight w, target = eq/w, d = |n - self|:
//     d > target attracts by min((d-target)², d-target);
//     otherwise repels by min(atanh((target-d)/target), target-d).
//   - Any other node m not associated in either direction repels by
//     min(1/d², eq).
//   - The summed displacement is scaled by the learning rate.
//
// Coincident points have no direction between them. They are separated along a
// unit axis derived from the two handles, antisymmetric in the pair, with the
// maximum repulsion the formulas above allow, so no NaN or Inf ever enters a
// position.
//
// The node set may only change between rounds. While a round is relaxing,
// AddNode, RemoveNode, Associate, Dissociate, SetNodeParameters and a second
// Step return ErrRoundInProgress.
//
// Deciding how many rounds to run, detecting convergence and persisting
// layouts are left to the caller.
package embed
