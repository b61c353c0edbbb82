// SPDX-License-Identifier: MIT
// Package: hyperlayout/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Fixed hub ID "Center"; leaves use cfg.idFn(0..n-2).
//   - Emits spokes Center→leaf in ascending leaf order (mirrored for directed graphs).
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlayout/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// StarCenterID is the fixed ID of the hub vertex created by Star.
	StarCenterID = "Center"
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		leaves := indexedIDs(cfg, 0, n-1)
		if err := addVertices(methodStar, g, append([]string{StarCenterID}, leaves...)); err != nil {
			return err
		}
		for _, leaf := range leaves {
			if err := link(methodStar, g, cfg, StarCenterID, leaf, true); err != nil {
				return err
			}
		}

		return nil
	}
}
