// SPDX-License-Identifier: MIT
//
// File: round.go
// Role: One relaxation round: snapshot → parallel relax → commit → recenter.
//
// Concurrency:
//   - mu is released for the parallel phase; state == Relaxing keeps every
//     mutator (and a second Step) out until the round is committed.
//   - Tasks read only the arena and write only pending[slot].

package embed

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/hyperlayout/hyperpoint"
)

// Step runs exactly one round.
//
// ctx is consulted once, before the round starts: a cancelled context returns
// its error and leaves the Embedding untouched. A round that has started runs
// to completion. An empty Embedding makes Step a no-op.
//
// Returns ErrRoundInProgress if another round is running, or the first error
// of a relaxation task (the round is then discarded without commit).
func (e *Embedding) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("Step: %w", err)
	}

	e.mu.Lock()
	if err := e.guard("Step"); err != nil {
		e.mu.Unlock()
		return err
	}
	if len(e.nodes) == 0 {
		e.mu.Unlock()
		return nil
	}
	start := time.Now()
	round := e.rounds + 1
	a := e.snapshot()
	e.state = Relaxing
	e.mu.Unlock()

	pending := make([]hyperpoint.Point, len(a.pos))
	// The round must not be abandoned halfway, so tasks never see ctx cancellation.
	err := e.pool.Run(context.WithoutCancel(ctx), len(a.pos), func(_ context.Context, slot int) error {
		if e.onRelax != nil {
			if err := e.onRelax(a.handles[slot], round); err != nil {
				return fmt.Errorf("relax %s: %w", a.handles[slot], err)
			}
		}
		p, err := a.relax(slot)
		if err != nil {
			return fmt.Errorf("relax %s: %w", a.handles[slot], err)
		}
		pending[slot] = p
		return nil
	})

	e.mu.Lock()
	if err != nil {
		e.state = Idle
		e.mu.Unlock()
		e.logger.Warn("round aborted", "round", round, "error", err)
		return fmt.Errorf("Step: round %d: %w", round, err)
	}
	e.state = Recentering
	stats, err := e.commit(a, pending)
	if err != nil {
		e.state = Idle
		e.mu.Unlock()
		e.logger.Warn("round aborted", "round", round, "error", err)
		return fmt.Errorf("Step: round %d: %w", round, err)
	}
	e.rounds = round
	stats.Round = round
	stats.Elapsed = time.Since(start)
	e.last = stats
	e.state = Idle
	e.mu.Unlock()

	e.logger.Debug("round complete",
		"round", stats.Round,
		"nodes", stats.Nodes,
		"max_shift", stats.MaxShift,
		"mean_shift", stats.MeanShift,
		"elapsed", stats.Elapsed)
	if e.onRound != nil {
		e.onRound(stats)
	}

	return nil
}

// Run calls Step rounds times, stopping at the first error.
// Cancellation takes effect between rounds.
func (e *Embedding) Run(ctx context.Context, rounds int) error {
	for i := 0; i < rounds; i++ {
		if err := e.Step(ctx); err != nil {
			return fmt.Errorf("Run: after %d of %d rounds: %w", i, rounds, err)
		}
	}

	return nil
}

// commit recenters the pending positions on their centroid, installs them and
// measures how far each node moved. Nothing is written unless every step succeeds.
// Caller holds mu.
func (e *Embedding) commit(a *arena, pending []hyperpoint.Point) (RoundStats, error) {
	centroid, err := hyperpoint.Centroid(pending)
	if err != nil {
		return RoundStats{}, fmt.Errorf("centroid: %w", err)
	}

	stats := RoundStats{Nodes: len(pending)}
	next := make([]hyperpoint.Point, len(pending))
	var total float64
	for slot, p := range pending {
		shift, err := p.DistanceTo(a.pos[slot])
		if err != nil {
			return RoundStats{}, fmt.Errorf("shift %s: %w", a.handles[slot], err)
		}
		total += shift
		if shift > stats.MaxShift {
			stats.MaxShift = shift
		}
		if next[slot], err = p.RelativeTo(centroid); err != nil {
			return RoundStats{}, fmt.Errorf("recenter %s: %w", a.handles[slot], err)
		}
	}
	stats.MeanShift = total / float64(len(pending))

	for slot, h := range a.handles {
		e.nodes[h].pos = next[slot]
	}

	return stats, nil
}
