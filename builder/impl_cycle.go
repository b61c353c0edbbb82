// SPDX-License-Identifier: MIT
// Package: hyperlayout/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits the path edges 0→1→…→n-1 followed by the closing edge n-1→0.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlayout/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := indexedIDs(cfg, 0, n)
		if err := addVertices(methodCycle, g, ids); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			// (i+1)%n closes the ring on the last iteration.
			if err := link(methodCycle, g, cfg, ids[i], ids[(i+1)%n], false); err != nil {
				return err
			}
		}

		return nil
	}
}
