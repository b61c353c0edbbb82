// SPDX-License-Identifier: MIT
// Package: hyperlayout/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Fixed coordinate IDs "r,c" (GridID); cfg.idFn is not consulted.
//   - Stable vertex order: row-major. Stable edge order: for each (r,c) Right then Bottom.
//   - Mirrored for directed graphs to preserve the symmetric neighborhood.
//
// Complexity: O(R·C) vertices + O(2·R·C) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlayout/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if err := addVertices(methodGrid, g, []string{GridID(r, c)}); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := link(methodGrid, g, cfg, u, GridID(r, c+1), true); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(methodGrid, g, cfg, u, GridID(r+1, c), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
