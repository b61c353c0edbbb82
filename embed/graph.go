// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Adapter registering a core.Graph as embedding nodes and associations.

package embed

import (
	"fmt"

	"github.com/katalvlaran/hyperlayout/core"
)

// FromGraph builds an Embedding of dimension dim from g.
//
// Every vertex becomes a node at a random position (uniform in [-1, 1] per
// coordinate, drawn from the WithSeed/WithRand source). Every edge becomes an
// association: directed edges one way, undirected edges both ways. The weight
// is the edge weight when g is weighted and the weight is positive, else 1.
// Self-loops carry no force and are skipped.
func FromGraph(g *core.Graph, dim int, opts ...Option) (*Embedding, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGraph: %w", ErrNilGraph)
	}
	e, err := New(dim, opts...)
	if err != nil {
		return nil, fmt.Errorf("FromGraph: %w", err)
	}

	for _, id := range g.Vertices() {
		if _, err := e.AddRandomNode(Handle(id)); err != nil {
			return nil, fmt.Errorf("FromGraph: %w", err)
		}
	}
	for _, edge := range g.Edges() {
		if edge.From == edge.To {
			continue
		}
		w := 1.0
		if g.Weighted() && edge.Weight > 0 {
			w = edge.Weight
		}
		from, to := Handle(edge.From), Handle(edge.To)
		if edge.Directed {
			err = e.Associate(from, to, w)
		} else {
			err = e.AssociateMutual(from, to, w)
		}
		if err != nil {
			return nil, fmt.Errorf("FromGraph: edge %s: %w", edge.ID, err)
		}
	}
	e.logger.Debug("graph registered", "vertices", g.VertexCount(), "edges", g.EdgeCount())

	return e, nil
}
