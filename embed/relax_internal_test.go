// SPDX-License-Identifier: MIT

package embed

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hyperlayout/hyperpoint"
)

func TestNeighborForce(t *testing.T) {
	cases := []struct {
		name      string
		d, target float64
		want      float64
	}{
		{"far, quadratic branch", 1.5, 1, 0.25},
		{"very far, linear clamp", 4, 1, 3},
		{"at rest", 1, 1, 0},
		{"close, linear clamp", 0.5, 1, -0.5},
		{"coincident", 0, 1, -1},
		{"coincident, short target", 0, 0.25, -0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, neighborForce(tc.d, tc.target), 1e-12)
		})
	}

	// Near rest atanh(x) ≈ x < target·x, so the atanh branch wins.
	got := neighborForce(1.9, 2)
	require.InDelta(t, -atanh(0.05), got, 1e-12)
}

func TestRepulsion(t *testing.T) {
	require.InDelta(t, -0.25, repulsion(2, 1), 1e-12)
	require.InDelta(t, -1.0, repulsion(0.5, 1), 1e-12, "clamped to -eq")
	require.InDelta(t, -3.0, repulsion(0.1, 3), 1e-12)
	require.Equal(t, -1.0, repulsion(0, 1), "coincident points get the clamp, not -Inf")
}

func TestAtanh(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.5, 0.9} {
		require.InDelta(t, math.Atanh(x), atanh(x), 1e-12)
	}
	require.True(t, math.IsInf(atanh(1), 1))
}

func TestAxis_AntisymmetricUnit(t *testing.T) {
	a := &arena{dim: 5, handles: []Handle{"alpha", "beta", "gamma"}}
	for self := range a.handles {
		for other := range a.handles {
			if self == other {
				continue
			}
			ab := a.axis(self, other)
			ba := a.axis(other, self)
			require.InDelta(t, 1.0, ab.Magnitude(), 1e-12)
			sum, err := ab.Add(ba)
			require.NoError(t, err)
			require.InDelta(t, 0.0, sum.Magnitude(), 1e-12)
			require.True(t, ab.Equal(a.axis(self, other), 0), "axis must be deterministic")
		}
	}
	x01, x02 := a.axis(0, 1), a.axis(0, 2)
	require.False(t, x01.Equal(x02, 1e-9), "different pairs get different axes")
}

func TestRelax_SingleNeighbor(t *testing.T) {
	p0, _ := hyperpoint.New(0, 0)
	p1, _ := hyperpoint.New(3, 0)
	a := &arena{
		dim:     2,
		handles: []Handle{"a", "b"},
		pos:     []hyperpoint.Point{p0, p1},
		out:     [][]link{{{slot: 1, weight: 1}}, nil},
		assoc:   []map[int]struct{}{{1: {}}, {0: {}}},
		eq:      []float64{1, 1},
		lr:      []float64{0.1, 0.1},
	}

	// d=3, target=1: attraction min(4, 2) = 2, scaled by 0.1.
	next, err := a.relax(0)
	require.NoError(t, err)
	want, _ := hyperpoint.New(0.2, 0)
	require.True(t, next.Equal(want, 1e-12), "got %v", next)

	// b has no outgoing association but is associated with a: no force at all.
	next, err = a.relax(1)
	require.NoError(t, err)
	require.True(t, next.Equal(p1, 0), "got %v", next)
}

func TestRelax_NonNeighborRepulsion(t *testing.T) {
	p0, _ := hyperpoint.New(0, 0, 0)
	p1, _ := hyperpoint.New(0, 2, 0)
	a := &arena{
		dim:     3,
		handles: []Handle{"a", "b"},
		pos:     []hyperpoint.Point{p0, p1},
		out:     [][]link{nil, nil},
		assoc:   []map[int]struct{}{{}, {}},
		eq:      []float64{1, 1},
		lr:      []float64{0.5, 0.5},
	}

	// d=2: push by 1/4 away from b, halved by the learning rate.
	next, err := a.relax(0)
	require.NoError(t, err)
	want, _ := hyperpoint.New(0, -0.125, 0)
	require.True(t, next.Equal(want, 1e-12), "got %v", next)
}
