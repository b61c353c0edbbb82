// SPDX-License-Identifier: MIT
// Package quality_test checks matrices and diagnostics against hand-built layouts.

package quality_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlayout/builder"
	"github.com/katalvlaran/hyperlayout/core"
	"github.com/katalvlaran/hyperlayout/dijkstra"
	"github.com/katalvlaran/hyperlayout/embed"
	"github.com/katalvlaran/hyperlayout/hyperpoint"
	"github.com/katalvlaran/hyperlayout/quality"
)

// line places path vertices "0".."n-1" on the x axis with the given spacing.
func line(t *testing.T, n int, spacing float64) quality.Positions {
	t.Helper()
	pos := make(quality.Positions, n)
	for i := 0; i < n; i++ {
		p, err := hyperpoint.New(float64(i)*spacing, 0)
		require.NoError(t, err)
		pos[embed.Handle(builder.DefaultIDFn(i))] = p
	}

	return pos
}

func TestMeanDistance(t *testing.T) {
	pos := line(t, 4, 1)

	d, err := quality.MeanDistance(pos, []embed.Handle{"0"}, []embed.Handle{"2", "3"})
	require.NoError(t, err)
	require.InDelta(t, 2.5, d, 1e-12)

	// u == v pairs are skipped.
	d, err = quality.MeanDistance(pos, []embed.Handle{"0", "1"}, []embed.Handle{"0", "1"})
	require.NoError(t, err)
	require.InDelta(t, 1.0, d, 1e-12)

	_, err = quality.MeanDistance(pos, nil, []embed.Handle{"0"})
	require.ErrorIs(t, err, quality.ErrEmptyGroup)
	_, err = quality.MeanDistance(pos, []embed.Handle{"x"}, []embed.Handle{"0"})
	require.ErrorIs(t, err, quality.ErrUnknownHandle)
	_, err = quality.MeanDistance(pos, []embed.Handle{"0"}, []embed.Handle{"0"})
	require.ErrorIs(t, err, quality.ErrNoPairs)
}

func TestDistanceAndPathMatrix(t *testing.T) {
	pos := line(t, 3, 2)
	order := []embed.Handle{"0", "1", "2"}
	geo, err := quality.DistanceMatrix(pos, order)
	require.NoError(t, err)
	r, c := geo.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 3, c)
	require.InDelta(t, 4.0, geo.At(0, 2), 1e-12)
	require.InDelta(t, 4.0, geo.At(2, 0), 1e-12)
	require.Zero(t, geo.At(1, 1))

	_, err = quality.DistanceMatrix(pos, []embed.Handle{"0", "nope"})
	require.ErrorIs(t, err, quality.ErrUnknownHandle)

	g, err := builder.BuildGraph(nil, nil, builder.Path(3))
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("island"))
	path, err := quality.PathMatrix(g, []string{"0", "2", "island"}, dijkstra.HopCost)
	require.NoError(t, err)
	require.InDelta(t, 2.0, path.At(0, 1), 1e-12)
	require.True(t, math.IsInf(path.At(0, 2), 1))
}

func TestStress_PerfectAndDistorted(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(4))
	require.NoError(t, err)

	s, err := quality.Stress(line(t, 4, 1), g, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.0, s, 1e-12, "unit spacing matches eq=1 exactly")

	s2, err := quality.Stress(line(t, 4, 2), g, 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, s2, 1e-12, "double spacing: every error equals its path length")

	// Weighted edges shorten the expected span to eq/w.
	w := core.NewGraph(core.WithWeighted())
	_, _ = w.AddEdge("0", "1", 2)
	s3, err := quality.Stress(line(t, 2, 0.5), w, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.0, s3, 1e-12)

	_, err = quality.Stress(nil, nil, 1)
	require.ErrorIs(t, err, quality.ErrNilInput)
}

func TestCorrelation(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(5))
	require.NoError(t, err)

	c, err := quality.Correlation(line(t, 5, 1.5), g)
	require.NoError(t, err)
	require.InDelta(t, 1.0, c, 1e-9)

	one, err := builder.BuildGraph(nil, nil, builder.Path(2))
	require.NoError(t, err)
	_, err = quality.Correlation(line(t, 2, 1), one)
	require.ErrorIs(t, err, quality.ErrNoPairs)
}

func TestEvaluate_Embedding(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(3, 3))
	require.NoError(t, err)
	e, err := embed.FromGraph(g, 2, embed.WithSeed(1))
	require.NoError(t, err)

	before, err := quality.Evaluate(e, g)
	require.NoError(t, err)
	require.NoError(t, e.Run(context.Background(), 300))
	after, err := quality.Evaluate(e, g)
	require.NoError(t, err)

	require.Equal(t, 9, after.Nodes)
	require.Equal(t, 36, after.Pairs)
	require.Equal(t, 1, after.Components)
	require.Less(t, after.Stress, before.Stress, "relaxation reduces stress")
	require.Greater(t, after.Correlation, 0.5)
	require.False(t, math.IsNaN(after.MeanEdgeLength))

	_, err = quality.Evaluate(nil, g)
	require.ErrorIs(t, err, quality.ErrNilInput)
	require.Equal(t, []embed.Handle{"0,0", "0,1"}, quality.SortedHandles(e.Positions())[:2])
}
