// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: Dense pairwise matrices (geometric and graph distances) on gonum/mat.

package quality

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hyperlayout/core"
	"github.com/katalvlaran/hyperlayout/dijkstra"
	"github.com/katalvlaran/hyperlayout/embed"
)

// DistanceMatrix returns the n×n matrix of Euclidean distances between the
// positions of order (row/column i is order[i]).
func DistanceMatrix(pos Positions, order []embed.Handle) (*mat.Dense, error) {
	n := len(order)
	if n == 0 {
		return nil, ErrEmptyGroup
	}
	m := mat.NewDense(n, n, nil)
	for i, u := range order {
		pu, ok := pos[u]
		if !ok {
			return nil, fmt.Errorf("DistanceMatrix: %s: %w", u, ErrUnknownHandle)
		}
		for j := i + 1; j < n; j++ {
			pv, ok := pos[order[j]]
			if !ok {
				return nil, fmt.Errorf("DistanceMatrix: %s: %w", order[j], ErrUnknownHandle)
			}
			d, err := pu.DistanceTo(pv)
			if err != nil {
				return nil, fmt.Errorf("DistanceMatrix: %s–%s: %w", u, order[j], err)
			}
			m.Set(i, j, d)
			m.Set(j, i, d)
		}
	}

	return m, nil
}

// PathMatrix returns the n×n matrix of shortest-path lengths between the
// vertices of order under cost (+Inf where unreachable). One dijkstra run per row.
func PathMatrix(g *core.Graph, order []string, cost dijkstra.CostFunc) (*mat.Dense, error) {
	if g == nil {
		return nil, ErrNilInput
	}
	n := len(order)
	if n == 0 {
		return nil, ErrEmptyGroup
	}
	m := mat.NewDense(n, n, nil)
	for i, u := range order {
		dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(u), dijkstra.WithCost(cost))
		if err != nil {
			return nil, fmt.Errorf("PathMatrix: from %s: %w", u, err)
		}
		for j, v := range order {
			m.Set(i, j, dist[v])
		}
	}

	return m, nil
}
