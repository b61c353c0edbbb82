// SPDX-License-Identifier: MIT
// Package: hyperlayout/builder
//
// impl_layered.go - implementation of Layered(sizes...) constructor.
//
// A layered graph has the connection pattern of a feed-forward network: every
// vertex of layer i is associated with every vertex of layer i+1 and with nothing
// else. It is the reference topology for checking that an embedding separates
// topologically distant layers.
//
// Contract:
//   - At least 2 layers, every layer size ≥ 1 (else ErrTooFewVertices).
//   - Fixed IDs LayerID(l, i) = "L<l>.<i>"; cfg.idFn is not consulted.
//   - Vertex.Metadata[LayerKey] holds the layer index (int).
//   - Edge order: layer ascending, then source index, then target index.
//     Mirrored for directed graphs.
//
// Complexity: O(Σ sizes) vertices + O(Σ sizes[l]·sizes[l+1]) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hyperlayout/core"
)

const (
	methodLayered = "Layered"
	minLayers     = 2
	minLayerSize  = 1

	// LayerKey is the Vertex.Metadata key under which Layered stores the layer index.
	LayerKey = "layer"
)

// Layered returns a Constructor that builds consecutive, fully associated layers.
func Layered(sizes ...int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if len(sizes) < minLayers {
			return fmt.Errorf("%s: %d layers < min=%d: %w", methodLayered, len(sizes), minLayers, ErrTooFewVertices)
		}
		for l, n := range sizes {
			if n < minLayerSize {
				return fmt.Errorf("%s: layer %d size=%d < min=%d: %w", methodLayered, l, n, minLayerSize, ErrTooFewVertices)
			}
		}

		for l, n := range sizes {
			for i := 0; i < n; i++ {
				id := LayerID(l, i)
				if err := addVertices(methodLayered, g, []string{id}); err != nil {
					return err
				}
				v, err := g.Vertex(id)
				if err != nil {
					return fmt.Errorf("%s: Vertex(%s): %w", methodLayered, id, err)
				}
				v.Metadata[LayerKey] = l
			}
		}

		for l := 0; l+1 < len(sizes); l++ {
			for i := 0; i < sizes[l]; i++ {
				for j := 0; j < sizes[l+1]; j++ {
					if err := link(methodLayered, g, cfg, LayerID(l, i), LayerID(l+1, j), true); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

// LayerMembers returns the vertex IDs of layer l as produced by Layered(sizes...).
// Returns nil when l is out of range.
func LayerMembers(sizes []int, l int) []string {
	if l < 0 || l >= len(sizes) {
		return nil
	}
	ids := make([]string, sizes[l])
	for i := range ids {
		ids[i] = LayerID(l, i)
	}

	return ids
}
