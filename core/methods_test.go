// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph configuration, vertex/edge lifecycle and
// deterministic neighborhood queries.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlayout/core"
)

func TestGraph_Options(t *testing.T) {
	g := core.NewGraph()
	require.False(t, g.Directed())
	require.False(t, g.Weighted())
	require.False(t, g.Looped())
	require.False(t, g.Multigraph())

	full := core.NewGraph(core.WithDirected(true), core.WithWeighted(), core.WithLoops(), core.WithMultiEdges())
	require.True(t, full.Directed())
	require.True(t, full.Weighted())
	require.True(t, full.Looped())
	require.True(t, full.Multigraph())
}

func TestGraph_VertexLifecycle(t *testing.T) {
	g := core.NewGraph()
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "AddVertex is idempotent")
	require.True(t, g.HasVertex("A"))
	require.False(t, g.HasVertex(""))
	require.Equal(t, 1, g.VertexCount())

	v, err := g.Vertex("A")
	require.NoError(t, err)
	require.Equal(t, "A", v.ID)
	require.NotNil(t, v.Metadata)
	_, err = g.Vertex("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)

	require.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.RemoveVertex("Z"), core.ErrVertexNotFound)
	require.NoError(t, g.RemoveVertex("A"))
	require.False(t, g.HasVertex("A"))
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("", "B", 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "B", 2)
	require.ErrorIs(t, err, core.ErrBadWeight, "unweighted graph rejects non-zero weight")
	_, err = g.AddEdge("A", "A", 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("B", "A", 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed, "undirected mirror counts as the same pair")

	w := core.NewGraph(core.WithWeighted())
	_, err = w.AddEdge("A", "B", math.NaN())
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = w.AddEdge("A", "B", math.Inf(1))
	require.ErrorIs(t, err, core.ErrBadWeight)
}

func TestGraph_UndirectedMirror(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	eid, err := g.AddEdge("A", "B", 2.5)
	require.NoError(t, err)
	require.Equal(t, "e1", eid)
	require.True(t, g.HasEdge("A", "B"))
	require.True(t, g.HasEdge("B", "A"))

	nb, err := g.NeighborIDs("B")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, nb)

	require.NoError(t, g.RemoveEdge(eid))
	require.False(t, g.HasEdge("A", "B"))
	require.False(t, g.HasEdge("B", "A"))
	require.ErrorIs(t, g.RemoveEdge(eid), core.ErrEdgeNotFound)
}

func TestGraph_DirectedNeighbors(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 0)
	require.NoError(t, err)

	out, err := g.NeighborIDs("A")
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, out, "only outgoing edges for directed graphs")
	require.False(t, g.HasEdge("B", "A"))

	_, err = g.Neighbors("Z")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Neighbors("")
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_RemoveVertexDropsIncidentEdges(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	for _, p := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}, {"C", "D"}} {
		_, err := g.AddEdge(p[0], p[1], 0)
		require.NoError(t, err)
	}
	require.NoError(t, g.RemoveVertex("C"))
	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, []string{"A", "B", "D"}, g.Vertices())
	out, err := g.NeighborIDs("B")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestGraph_DeterministicEdgeOrder(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	for i := 0; i < 12; i++ {
		_, err := g.AddEdge("A", "B", 0)
		require.NoError(t, err)
	}
	edges := g.Edges()
	require.Len(t, edges, 12)
	require.Equal(t, "e1", edges[0].ID)
	require.Equal(t, "e2", edges[1].ID)
	require.Equal(t, "e12", edges[11].ID)

	nb, err := g.Neighbors("B")
	require.NoError(t, err)
	require.Len(t, nb, 12)
	require.Equal(t, "A", nb[0].Other("B"))
}

func TestGraph_Loops(t *testing.T) {
	g := core.NewGraph(core.WithLoops())
	_, err := g.AddEdge("A", "A", 0)
	require.NoError(t, err)
	nb, err := g.NeighborIDs("A")
	require.NoError(t, err)
	require.Equal(t, []string{"A"}, nb)
}
