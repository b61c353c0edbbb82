// SPDX-License-Identifier: MIT
// Package: hyperlayout/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - 0 < p < 1 requires cfg.rng (ErrNeedRandSource); p ∈ {0,1} is deterministic without it.
//   - Undirected: each unordered pair i<j is drawn once. Directed: each ordered pair
//     i≠j is drawn once (loops only if the graph allows them).
//   - Draw order is stable (i asc, then j asc), so a fixed seed gives a fixed graph.
//
// Complexity: O(n²) pair checks.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlayout/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that builds an Erdős–Rényi G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids := indexedIDs(cfg, 0, n)
		if err := addVertices(methodRandomSparse, g, ids); err != nil {
			return err
		}

		// draw reports whether the next pair becomes an edge.
		draw := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j && !g.Looped() {
					continue
				}
				if !draw() {
					continue
				}
				if err := link(methodRandomSparse, g, cfg, ids[i], ids[j], false); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
